package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/assetbatch/internal/bundle"
	"github.com/handiism/assetbatch/internal/config"
	ioutils "github.com/handiism/assetbatch/internal/io"
	"github.com/handiism/assetbatch/internal/loader"
	"github.com/handiism/assetbatch/internal/logger"
	"github.com/handiism/assetbatch/internal/model"
	"github.com/handiism/assetbatch/internal/registry"
)

func main() {
	// Command line flags
	var (
		manifestFlag = flag.String("manifest", "", "Path to a JSON manifest listing the assets to load")
		configFlag   = flag.String("config", "", "Path to config file")
		rootFlag     = flag.String("root", "", "Resources root directory (overrides config)")
		parallelFlag = flag.Int("parallel", 0, "Maximum concurrent loads (overrides config)")
		retryFlag    = flag.Int("retry", -1, "Retry budget for failed bundles and items (overrides config)")
		saveFlag     = flag.String("save", "", "Export loaded raw assets into this directory")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Parse the manifest without loading")
	)

	flag.Parse()

	manifest := *manifestFlag
	if manifest == "" && flag.NArg() > 0 {
		manifest = flag.Arg(0)
	}
	if manifest == "" {
		fmt.Println("assetbatch - Load asset bundles from disk and remote manifests")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  assetbatch -manifest <file> [options]")
		fmt.Println("  assetbatch <file> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: assetbatch-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *rootFlag != "" {
		settings.ResourcesRoot = *rootFlag
	}
	if *parallelFlag > 0 {
		settings.MaxParallelLoads = *parallelFlag
	}
	if *retryFlag >= 0 {
		settings.LoadMaxRetries = *retryFlag
	}
	level := settings.LogLevel
	if *verboseFlag {
		level = "debug"
	}
	log := logger.New(os.Stderr, level)

	descs, err := readManifest(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("📦 assetbatch: %d item(s) from %s\n\n", len(descs), manifest)

	if *dryRunFlag {
		for _, d := range descs {
			d = d.Normalized()
			shape := "directory"
			if d.IsFile {
				shape = "file"
			}
			fmt.Printf("  %-6s %s:%s (%s)\n", d.Kind, d.Bundle, d.Path, shape)
		}
		fmt.Println("\n[Dry run - not loading]")
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	provider := bundle.NewProvider(settings.Roots(), settings.MaxParallelReads, bundle.DecodeSettings{
		GenerateThumbnails: settings.GenerateThumbnails,
		ThumbnailMaxSize:   settings.ThumbnailMaxSize,
		ExtractAudioTags:   settings.ExtractAudioTags,
	})
	store := registry.NewStore()
	ldr := loader.New(provider, store, log)
	defer ldr.Close()

	done := make(chan error, 1)
	ldr.Start(ctx, descs, loader.Options{
		Parallel: settings.MaxParallelLoads,
		Retry:    settings.LoadMaxRetries,
		OnProgress: func(f float64) {
			fmt.Printf("\r  Loading... %3.0f%%", f*100)
		},
		OnComplete: func() {
			done <- nil
		},
		OnFail: func(msg string, err error) {
			done <- fmt.Errorf("%s: %w", msg, err)
		},
	})

	select {
	case err = <-done:
	case <-ctx.Done():
		fmt.Println("\nLoad cancelled.")
		os.Exit(130)
	}
	fmt.Println()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during load: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Registered %d asset(s)\n", store.Len())

	if *saveFlag != "" {
		n, err := export(ctx, store, descs, *saveFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("   Exported %d asset(s) to %s\n", n, *saveFlag)
	}
}

// readManifest decodes a JSON list of asset descriptors.
func readManifest(path string) ([]model.AssetDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var descs []model.AssetDescriptor
	if err := json.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(descs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no assets", path)
	}
	return descs, nil
}

// export writes every registered asset's raw bytes under dir, one file
// per asset, grouped by bundle.
func export(ctx context.Context, store *registry.Store, descs []model.AssetDescriptor, dir string) (int, error) {
	count := 0
	for _, d := range descs {
		d = d.Normalized()
		for _, a := range store.ByPrefix(d.Kind, d.Path) {
			name := ioutils.SanitizeFileName(filepath.Base(a.Path))
			target := filepath.Join(dir, a.Bundle, filepath.FromSlash(filepath.Dir(a.Path)), name)
			if err := ioutils.EnsureDir(filepath.Dir(target)); err != nil {
				return count, err
			}
			if err := ioutils.WriteFile(ctx, target, a.Data); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
