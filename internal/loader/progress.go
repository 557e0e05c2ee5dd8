package loader

import "github.com/handiism/assetbatch/internal/model"

// ledger accumulates completed unit counts per item key against the
// precomputed batch total. Keys survive out-of-order completion because
// identity, not dispatch order, indexes the counts.
type ledger struct {
	total  int
	counts map[model.ItemKey]int
	notify func(float64)
}

func newLedger(total int, notify func(float64)) *ledger {
	return &ledger{
		total:  total,
		counts: make(map[model.ItemKey]int),
		notify: notify,
	}
}

// record stores the completed unit count for one item. Counts never
// regress: a late partial report cannot undo a final one.
func (dl *ledger) record(key model.ItemKey, done int) {
	if done > dl.counts[key] {
		dl.counts[key] = done
	}
}

// fraction returns the aggregated progress in [0, 1]. An empty batch
// total reports 1.0 rather than dividing by zero.
func (dl *ledger) fraction() float64 {
	if dl.total <= 0 {
		return 1.0
	}
	sum := 0
	for _, n := range dl.counts {
		sum += n
	}
	f := float64(sum) / float64(dl.total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// publish reports the current fraction, if a progress callback exists.
func (dl *ledger) publish() {
	if dl.notify != nil {
		dl.notify(dl.fraction())
	}
}
