package loader

import (
	"fmt"

	"github.com/handiism/assetbatch/internal/logger"
	"github.com/handiism/assetbatch/internal/model"
)

// initialize resolves bundles and expected counts for every descriptor of
// the current batch, rebuilding the item set from scratch.
//
// Descriptors in the default "resources" bundle resolve inline; all
// others resolve in worker goroutines that report back as resolveEvents.
// The pending counter belongs to the current generation only: a restart
// re-enters this function with a bumped generation and the old counter is
// abandoned wholesale.
func (l *Loader) initialize() {
	b := l.b
	b.items = nil
	b.total = 0
	b.pending = len(b.descs)
	b.handles = make(map[string]Handle)
	b.ledger = newLedger(0, b.opts.OnProgress)

	ctx := b.ctx
	gen := b.gen
	for _, d := range b.descs {
		if d.Bundle != model.DefaultBundle {
			go func(d model.AssetDescriptor) {
				h, err := l.src.Resolve(ctx, d.Bundle)
				l.post(resolveEvent{gen: gen, desc: d, handle: h, err: err})
			}(d)
			continue
		}

		// The default container resolves synchronously, so its items are
		// counted and appended immediately.
		h, ok := b.handles[d.Bundle]
		if !ok {
			var err error
			h, err = l.src.Resolve(ctx, d.Bundle)
			if err != nil {
				l.initFailed(d.Bundle, err)
				return
			}
			b.handles[d.Bundle] = h
		}
		l.admit(d, h)
	}

	if b.pending == 0 {
		l.initSucceeded()
	}
}

// handleResolve consumes an asynchronous bundle resolution result.
func (l *Loader) handleResolve(ev resolveEvent) {
	b := l.b
	if b == nil || ev.gen != b.gen || b.done {
		return
	}

	if ev.err != nil {
		l.initFailed(ev.desc.Bundle, ev.err)
		return
	}

	b.handles[ev.desc.Bundle] = ev.handle
	l.admit(ev.desc, ev.handle)
	if b.pending == 0 {
		l.initSucceeded()
	}
}

// admit counts a resolved descriptor, appends its item and accumulates
// the batch total.
func (l *Loader) admit(d model.AssetDescriptor, h Handle) {
	b := l.b
	count := l.src.Count(d.Path, d.Kind, h)
	b.items = append(b.items, model.NewLoadItem(d, count))
	b.total += count
	b.pending--
}

// initFailed restarts the whole initializer within budget, or surfaces
// the terminal failure.
func (l *Loader) initFailed(bundle string, err error) {
	b := l.b
	l.log.Warn("bundle resolution failed",
		logger.KeyBundle, bundle,
		logger.KeyError, err,
	)
	if b.retryCount < b.opts.Retry {
		b.retryCount++
		b.gen = l.nextGen()
		l.initialize()
		return
	}
	l.fail(fmt.Sprintf("could not resolve bundle %q after %d retries", bundle, b.retryCount), err)
}

// initSucceeded freezes the item set and fills the initial concurrency
// window.
func (l *Loader) initSucceeded() {
	b := l.b
	b.initDone = true
	b.ledger = newLedger(b.total, b.opts.OnProgress)

	l.log.Debug("batch initialized",
		logger.KeyBatch, b.opts.Tag,
		"items", len(b.items),
		"units", b.total,
	)

	window := min(len(b.items), b.opts.Parallel)
	for i := 0; i < window; i++ {
		l.loadNext()
	}
	if len(b.items) == 0 {
		// Degenerate empty batch: report 1.0 and complete immediately.
		b.ledger.publish()
		l.loadNext()
	}
}
