// Package tui provides a Bubble Tea terminal user interface for assetbatch.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/assetbatch/internal/bundle"
	"github.com/handiism/assetbatch/internal/config"
	"github.com/handiism/assetbatch/internal/loader"
	"github.com/handiism/assetbatch/internal/model"
	"github.com/handiism/assetbatch/internal/registry"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	bundleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateComplete
	StateError
)

// LogLevel classifies a log line for coloring.
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   LogLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	bundles   []string
	err       error
	failMsg   string

	// Loader reference, built when a batch starts.
	ldr   *loader.Loader
	store *registry.Store

	// Loader callbacks run on the scheduler goroutine; they are bridged
	// into Bubble Tea through this channel.
	events chan tea.Msg

	fraction float64
	descs    int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "manifest.json"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		settings = config.DefaultSettings()
	}

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		events:    make(chan tea.Msg, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries the aggregated batch fraction.
	ProgressMsg struct {
		Fraction float64
	}

	// StartedMsg is sent after the batch has been handed to the loader.
	StartedMsg struct {
		Bundles []string
		Descs   int
		Ldr     *loader.Loader
		Store   *registry.Store
		Err     error
	}

	// CompleteMsg is sent when every item finished.
	CompleteMsg struct{}

	// FailMsg is sent when the retry budget is exhausted.
	FailMsg struct {
		Msg string
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.closeLoader()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading {
				m.closeLoader()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.startBatch(), m.listen(), m.spinner.Tick)
			}

		case "r":
			if m.state == StateError && m.ldr != nil {
				// Re-drive the failed batch with a fresh budget.
				m.state = StateLoading
				m.err = nil
				m.failMsg = ""
				m.logs = append(m.logs, LogEntry{Message: "retrying failed items", Level: LevelWarning})
				m.ldr.Retry()
				return m, tea.Batch(m.listen(), m.spinner.Tick)
			}

		case "n":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new batch
				m.closeLoader()
				m.state = StateInput
				m.logs = nil
				m.bundles = nil
				m.err = nil
				m.failMsg = ""
				m.fraction = 0
				m.descs = 0
				m.store = nil
				m.events = make(chan tea.Msg, 64)
				m.textInput.SetValue("")
				m.textInput.Focus()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				m.closeLoader()
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case StartedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.bundles = msg.Bundles
			m.descs = msg.Descs
			m.ldr = msg.Ldr
			m.store = msg.Store
		}

	case ProgressMsg:
		m.fraction = msg.Fraction
		cmds = append(cmds, m.progress.SetPercent(msg.Fraction), m.listen())

	case CompleteMsg:
		m.fraction = 1.0
		m.state = StateComplete
		m.logs = append(m.logs, LogEntry{Message: "all items finished", Level: LevelSuccess})

	case FailMsg:
		m.state = StateError
		m.failMsg = msg.Msg
		m.err = msg.Err
		m.logs = append(m.logs, LogEntry{Message: msg.Msg, Level: LevelError})

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// listen waits for the next bridged loader event.
func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

func (m *Model) closeLoader() {
	if m.ldr != nil {
		m.ldr.Close()
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📦 Asset Batch Loader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Load asset bundles from disk and remote manifests"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter manifest path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Resources root: %s", m.settings.ResourcesRoot)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Parallel loads: %d | Retry budget: %d",
		m.settings.MaxParallelLoads, m.settings.LoadMaxRetries,
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	if len(m.bundles) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Loading %d item(s) from:", m.descs)))
		b.WriteString("\n")
		for _, name := range m.bundles {
			b.WriteString(bundleStyle.Render(fmt.Sprintf("  ▸ %s", name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Resolving bundles..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.progress.ViewAs(m.fraction))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Progress: %.0f%%", m.fraction*100)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	registered := 0
	if m.store != nil {
		registered = m.store.Len()
	}

	return boxStyle.Render(fmt.Sprintf(
		"✨ Batch Complete!\n\n"+
			"Items: %d\n"+
			"Assets registered: %d",
		m.descs,
		registered,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Batch failed:"))
	b.WriteString("\n\n")
	if m.failMsg != "" {
		b.WriteString(fmt.Sprintf("  %s\n", m.failMsg))
	}
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case LevelError:
			style = errorStyle
			prefix = "✗"
		case LevelWarning:
			style = warningStyle
			prefix = "!"
		case LevelSuccess:
			style = successStyle
			prefix = "✓"
		case LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • esc: quit"
	case StateLoading:
		return "esc: cancel"
	case StateComplete:
		return "n: new batch • q: quit"
	case StateError:
		return "r: retry • n: new batch • q: quit"
	}
	return ""
}

// readManifest decodes a JSON list of asset descriptors.
func readManifest(path string) ([]model.AssetDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var descs []model.AssetDescriptor
	if err := json.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return descs, nil
}

// startBatch builds the provider stack and hands the manifest to the
// loader. The loader callbacks feed the event channel drained by listen;
// the loader itself travels back to Update inside StartedMsg.
func (m Model) startBatch() tea.Cmd {
	events := m.events
	manifest := m.textInput.Value()
	settings := m.settings

	return func() tea.Msg {
		descs, err := readManifest(manifest)
		if err != nil {
			return StartedMsg{Err: err}
		}

		provider := bundle.NewProvider(settings.Roots(), settings.MaxParallelReads, bundle.DecodeSettings{
			GenerateThumbnails: settings.GenerateThumbnails,
			ThumbnailMaxSize:   settings.ThumbnailMaxSize,
			ExtractAudioTags:   settings.ExtractAudioTags,
		})
		store := registry.NewStore()
		ldr := loader.New(provider, store, nil)

		ldr.Start(context.Background(), descs, loader.Options{
			Parallel: settings.MaxParallelLoads,
			Retry:    settings.LoadMaxRetries,
			OnProgress: func(f float64) {
				events <- ProgressMsg{Fraction: f}
			},
			OnComplete: func() {
				events <- CompleteMsg{}
			},
			OnFail: func(msg string, err error) {
				events <- FailMsg{Msg: msg, Err: err}
			},
		})

		seen := map[string]bool{}
		var names []string
		for _, d := range descs {
			d = d.Normalized()
			if !seen[d.Bundle] {
				seen[d.Bundle] = true
				names = append(names, d.Bundle)
			}
		}

		return StartedMsg{Bundles: names, Descs: len(descs), Ldr: ldr, Store: store}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
