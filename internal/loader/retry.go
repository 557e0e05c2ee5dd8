package loader

import (
	"fmt"

	"github.com/handiism/assetbatch/internal/model"
)

// retryStart re-runs the initializer from scratch. Used while
// initialization has never succeeded: either an internal bundle
// resolution failure within budget, or an external Retry issued before
// the first success.
func (l *Loader) retryStart() {
	b := l.b
	if b.retryCount >= b.opts.Retry {
		l.fail(fmt.Sprintf("initialization retry budget exhausted after %d attempts", b.retryCount), b.lastErr)
		return
	}
	b.retryCount++
	b.gen = l.nextGen()
	l.initialize()
}

// retryLoad resets every Error item back to Wait and refills the
// concurrency window. Finished items are untouched: their recorded
// progress survives and they are never reloaded.
func (l *Loader) retryLoad() {
	b := l.b
	if b.retryCount >= b.opts.Retry {
		l.fail(fmt.Sprintf("load of %s failed, retry budget exhausted after %d attempts", b.lastKey, b.retryCount), b.lastErr)
		return
	}
	b.retryCount++

	reset := 0
	for _, it := range b.items {
		if it.Status == model.StatusError {
			it.Status = model.StatusWait
			reset++
		}
	}
	l.log.Debug("retrying failed items", "reset", reset, "attempt", b.retryCount)

	for i := 0; i < min(reset, b.opts.Parallel); i++ {
		l.loadNext()
	}
}
