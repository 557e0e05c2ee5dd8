package loader

import (
	"context"
	"fmt"

	"github.com/handiism/assetbatch/internal/logger"
	"github.com/handiism/assetbatch/internal/model"
)

// loadNext performs one pull-based scheduling pass: dispatch the first
// waiting item, or decide the batch's terminal outcome once nothing is
// left to dispatch. It is invoked once per initial window slot and once
// per item completion; nothing else dispatches work.
func (l *Loader) loadNext() {
	b := l.b
	if b.done {
		return
	}

	for idx, it := range b.items {
		if it.Status == model.StatusWait {
			l.dispatch(idx)
			return
		}
	}

	allFinished := true
	for _, it := range b.items {
		if it.Status != model.StatusFinish {
			allFinished = false
			break
		}
	}
	if allFinished {
		l.complete()
		return
	}

	// Nothing waiting and not everything finished. With loads still in
	// flight we simply wait for their completions to re-enter this
	// function; once drained, the remaining items are all in Error.
	if b.parallel > 0 {
		return
	}
	if b.retryCount < b.opts.Retry {
		l.retryLoad()
		return
	}
	l.fail(fmt.Sprintf("load of %s failed, retry budget exhausted after %d attempts", b.lastKey, b.retryCount), b.lastErr)
}

// dispatch moves an item into Loading and hands it to a worker goroutine.
// The bundle handle is usually cached from initialization; when it is not
// (a retried batch slot, for instance) the worker resolves it first.
func (l *Loader) dispatch(idx int) {
	b := l.b
	it := b.items[idx]
	it.Status = model.StatusLoading
	b.parallel++

	ctx := b.ctx
	gen := b.gen
	if h, ok := b.handles[it.Bundle]; ok {
		go l.runLoad(ctx, gen, idx, it, h, false)
		return
	}
	go func() {
		h, err := l.src.Resolve(ctx, it.Bundle)
		if err != nil {
			l.post(loadedEvent{gen: gen, idx: idx, err: fmt.Errorf("resolve bundle %q: %w", it.Bundle, err)})
			return
		}
		l.runLoad(ctx, gen, idx, it, h, true)
	}()
}

// runLoad executes the load primitive for one item in a worker goroutine
// and posts the completion event. Only the item's immutable descriptor
// fields are read here.
func (l *Loader) runLoad(ctx context.Context, gen, idx int, it *model.LoadItem, h Handle, resolved bool) {
	var handle Handle
	if resolved {
		handle = h
	}

	if it.IsFile {
		asset, err := l.src.LoadSingle(ctx, h, it.Path, it.Kind)
		if err != nil {
			l.post(loadedEvent{gen: gen, idx: idx, handle: handle, err: err})
			return
		}
		l.post(loadedEvent{gen: gen, idx: idx, handle: handle, assets: []model.Asset{asset}})
		return
	}

	assets, err := l.src.LoadDirectory(ctx, h, it.Path, it.Kind, func(done, _ int) {
		l.post(partialEvent{gen: gen, idx: idx, done: done})
	})
	l.post(loadedEvent{gen: gen, idx: idx, handle: handle, assets: assets, err: err})
}

// handlePartial records an intermediate sub-count from a directory load.
func (l *Loader) handlePartial(ev partialEvent) {
	b := l.b
	if b == nil || ev.gen != b.gen || b.done {
		return
	}
	it := b.items[ev.idx]
	if it.Status != model.StatusLoading {
		return
	}
	b.ledger.record(it.Key(), min(ev.done, it.Expected))
	b.ledger.publish()
}

// handleLoaded consumes one item completion: bookkeeping, progress, and
// exactly one re-entrant scheduling pass.
func (l *Loader) handleLoaded(ev loadedEvent) {
	b := l.b
	if b == nil || ev.gen != b.gen || b.done {
		return
	}

	it := b.items[ev.idx]
	b.parallel--

	if ev.handle != nil {
		if _, ok := b.handles[it.Bundle]; !ok {
			b.handles[it.Bundle] = ev.handle
		}
	}

	if ev.err != nil {
		it.Status = model.StatusError
		b.lastErr = ev.err
		b.lastKey = it.Key()
		l.log.Warn("asset load failed",
			logger.KeyBundle, it.Bundle,
			logger.KeyPath, it.Path,
			logger.KeyKind, string(it.Kind),
			logger.KeyError, ev.err,
		)
	} else {
		it.Status = model.StatusFinish
		b.ledger.record(it.Key(), it.Expected)
		l.sink.RegisterLoaded(ev.assets, b.handles[it.Bundle], b.opts.Tag)
	}

	b.ledger.publish()
	l.loadNext()
}
