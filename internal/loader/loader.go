package loader

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/handiism/assetbatch/internal/logger"
	"github.com/handiism/assetbatch/internal/model"
)

// DefaultParallel is the default number of concurrently outstanding loads.
const DefaultParallel = 5

// DefaultRetry is the default retry budget shared by both retry tiers.
const DefaultRetry = 3

// Handle is an opaque resolved bundle produced by a Source.
type Handle interface {
	// Name returns the bundle name the handle was resolved from.
	Name() string
}

// Source supplies bundle resolution, unit counting and the load
// primitives. Implementations own failure detection and timeouts; the
// loader imposes none of its own.
//
// Resolve for the default "resources" bundle must be cheap and
// synchronous in effect, since the loader calls it inline while counting
// descriptors. Resolution of any other bundle runs in a worker goroutine.
type Source interface {
	// Resolve turns a bundle name into a loadable handle.
	Resolve(ctx context.Context, bundle string) (Handle, error)

	// Count returns the number of units a path+kind descriptor will
	// expand to inside the resolved bundle.
	Count(path string, kind model.AssetKind, h Handle) int

	// LoadDirectory loads every matching unit under path. onProgress may
	// be called with intermediate (done, total) sub-counts before the
	// final return.
	LoadDirectory(ctx context.Context, h Handle, path string, kind model.AssetKind, onProgress func(done, total int)) ([]model.Asset, error)

	// LoadSingle loads exactly one unit.
	LoadSingle(ctx context.Context, h Handle, path string, kind model.AssetKind) (model.Asset, error)
}

// Sink receives finished assets for later retrieval and lifecycle
// management. RegisterLoaded is called from the scheduler goroutine.
type Sink interface {
	RegisterLoaded(assets []model.Asset, h Handle, batchTag string)
}

// Options configures one batch.
type Options struct {
	// Parallel caps the number of concurrently outstanding load
	// operations. Values <= 0 select DefaultParallel.
	Parallel int

	// Retry is the shared budget for batch-level re-initialization and
	// item-level re-dispatch. Zero disables automatic retries; negative
	// values select DefaultRetry.
	Retry int

	// Tag names the batch toward the sink. A fresh UUID is generated
	// when empty.
	Tag string

	// OnProgress receives the aggregated fraction in [0, 1] after every
	// partial or final per-item update. Optional.
	OnProgress func(fraction float64)

	// OnComplete fires exactly once when every item finishes.
	OnComplete func()

	// OnFail fires exactly once when the retry budget is exhausted with
	// failures still present.
	OnFail func(msg string, err error)
}

func (o Options) withDefaults() Options {
	if o.Parallel <= 0 {
		o.Parallel = DefaultParallel
	}
	if o.Retry < 0 {
		o.Retry = DefaultRetry
	}
	if o.Tag == "" {
		o.Tag = uuid.NewString()
	}
	return o
}

// Loader coordinates asset batch loads.
//
// One Loader drives one batch at a time. All batch state lives in a
// single scheduling goroutine that consumes completion events from a
// channel; collaborator calls run in worker goroutines and report back as
// events, so no locks guard the batch state itself.
type Loader struct {
	src  Source
	sink Sink
	log  *slog.Logger

	events chan event
	quit   chan struct{}
	runOnce  sync.Once
	quitOnce sync.Once

	// gens issues attempt generations. Monotonic across batches as well
	// as restarts, so a straggler from a superseded batch can never
	// carry the generation of a later one. Owned by the run goroutine.
	gens int

	// b is the current batch. Owned by the run goroutine.
	b *batch
}

// New creates a Loader over the given collaborators.
//
// A nil log disables diagnostics.
func New(src Source, sink Sink, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		src:    src,
		sink:   sink,
		log:    log,
		events: make(chan event, 64),
		quit:   make(chan struct{}),
	}
}

// Start begins a batch over the given descriptors.
//
// Start returns immediately; outcomes are reported through the Options
// callbacks, which run on the scheduler goroutine. Starting a new batch
// while a previous one is still in flight supersedes it: stragglers from
// the old batch are discarded.
func (l *Loader) Start(ctx context.Context, descriptors []model.AssetDescriptor, opts Options) {
	l.runOnce.Do(func() { go l.run() })

	descs := make([]model.AssetDescriptor, len(descriptors))
	for i, d := range descriptors {
		descs[i] = d.Normalized()
	}
	l.post(startEvent{ctx: ctx, descs: descs, opts: opts.withDefaults()})
}

// Retry re-drives a previously failed or stalled batch using the
// last-supplied configuration and callbacks.
//
// The in-flight counter and retry budget are reset to zero first; the
// batch then restarts at the initializer if initialization never
// succeeded, or re-dispatches its Error items otherwise. Finished items
// are never reloaded. Calling Retry before Start is a no-op.
func (l *Loader) Retry() {
	l.post(retryEvent{})
}

// Close stops the scheduler goroutine. In-flight collaborator calls are
// not cancelled, but their results are discarded. The Loader cannot be
// reused after Close.
func (l *Loader) Close() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// nextGen issues a fresh attempt generation. Called on the run goroutine
// only.
func (l *Loader) nextGen() int {
	l.gens++
	return l.gens
}

// post delivers an event unless the loader is closed.
func (l *Loader) post(ev event) {
	select {
	case l.events <- ev:
	case <-l.quit:
	}
}

func (l *Loader) run() {
	for {
		select {
		case <-l.quit:
			return
		case ev := <-l.events:
			l.handle(ev)
		}
	}
}

func (l *Loader) handle(ev event) {
	switch ev := ev.(type) {
	case startEvent:
		l.b = newBatch(ev.ctx, ev.descs, ev.opts)
		l.b.gen = l.nextGen()
		l.initialize()

	case retryEvent:
		b := l.b
		if b == nil {
			return
		}
		b.parallel = 0
		b.retryCount = 0
		b.done = false
		b.gen = l.nextGen() // supersede stragglers from the failed run
		if b.initDone {
			l.retryLoad()
		} else {
			l.retryStart()
		}

	case resolveEvent:
		l.handleResolve(ev)

	case partialEvent:
		l.handlePartial(ev)

	case loadedEvent:
		l.handleLoaded(ev)
	}
}

func (l *Loader) complete() {
	b := l.b
	if b.done {
		return
	}
	b.done = true
	l.log.Info("batch complete",
		logger.KeyBatch, b.opts.Tag,
		"items", len(b.items),
		"units", b.total,
	)
	if b.opts.OnComplete != nil {
		b.opts.OnComplete()
	}
}

func (l *Loader) fail(msg string, err error) {
	b := l.b
	if b.done {
		return
	}
	b.done = true
	l.log.Error("batch failed",
		logger.KeyBatch, b.opts.Tag,
		logger.KeyError, err,
	)
	if b.opts.OnFail != nil {
		b.opts.OnFail(msg, err)
	}
}
