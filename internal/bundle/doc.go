// Package bundle implements the loader's Source contract over local
// directories and remote HTTP bundles.
//
// # Bundles
//
// A bundle is a named container of assets. The configuration maps each
// bundle name to a root: a local directory or an HTTP base URL. The
// default "resources" bundle must be a local directory so it can be
// resolved synchronously during batch initialization.
//
// # Providers
//
//	src := bundle.NewProvider(settings.Roots(), settings.MaxParallelReads, bundle.DecodeSettings{
//	    ExtractAudioTags: true,
//	})
//
// NewProvider returns a Mux that routes per bundle: filesystem bundles
// resolve by checking their root exists, remote bundles resolve by
// fetching <base>/manifest.json. Directory loads read or download
// matching files with bounded concurrency (errgroup.SetLimit) and report
// a sub-count after each completed unit.
//
// # Decoding
//
// Every loaded unit passes through a kind-aware decode step: images are
// validated and optionally downscaled into JPEG thumbnails, audio files
// get their ID3 metadata extracted, text and raw bytes pass through.
package bundle
