package loader

import (
	"context"

	"github.com/handiism/assetbatch/internal/model"
)

// batch is the state of one Start invocation. It is owned exclusively by
// the scheduler goroutine; worker goroutines only ever see immutable item
// fields and communicate back through events.
type batch struct {
	// ctx was supplied to Start and is forwarded to every collaborator
	// call of this batch. Immutable after construction.
	ctx context.Context

	descs []model.AssetDescriptor
	opts  Options

	// gen is the attempt generation, issued by the Loader's monotonic
	// counter. Every new batch and every restart takes a fresh value;
	// events stamped with any other generation belong to a superseded
	// attempt or batch and are dropped, so stale resolutions and
	// completions can never corrupt the pending or progress bookkeeping.
	gen int

	// items is fixed in length once initialization completes; only the
	// Status fields mutate afterwards.
	items []*model.LoadItem

	// total is the sum of all expected unit counts.
	total int

	// ledger accumulates completed unit counts per item key.
	ledger *ledger

	// handles caches resolved bundles for dispatch.
	handles map[string]Handle

	// pending counts descriptors not yet resolved in the current
	// initialization attempt.
	pending int

	// parallel is the current number of outstanding load operations.
	parallel int

	// retryCount is shared by both retry tiers. Monotonic within one
	// lineage; only an external Retry resets it.
	retryCount int

	// initDone is set once initialization has succeeded at least once in
	// this lineage. It selects the retry tier.
	initDone bool

	// done blocks further callbacks once a terminal outcome fired.
	done bool

	// lastErr and lastKey identify the most recent item failure for the
	// terminal fail message.
	lastErr error
	lastKey model.ItemKey
}

func newBatch(ctx context.Context, descs []model.AssetDescriptor, opts Options) *batch {
	return &batch{
		ctx:     ctx,
		descs:   descs,
		opts:    opts,
		handles: make(map[string]Handle),
	}
}
