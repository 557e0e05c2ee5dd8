package loader

import (
	"context"

	"github.com/handiism/assetbatch/internal/model"
)

// event is a message consumed by the scheduler goroutine. Events that
// originate in worker goroutines carry the batch generation they belong
// to; events from a superseded generation are discarded.
type event interface{}

// startEvent begins a new batch with normalized descriptors.
type startEvent struct {
	ctx   context.Context
	descs []model.AssetDescriptor
	opts  Options
}

// retryEvent is posted by the external Retry call.
type retryEvent struct{}

// resolveEvent reports an initialization-phase bundle resolution.
type resolveEvent struct {
	gen    int
	desc   model.AssetDescriptor
	handle Handle
	err    error
}

// partialEvent reports an intermediate sub-count from a directory load.
type partialEvent struct {
	gen  int
	idx  int
	done int
}

// loadedEvent reports the completion of one dispatched item.
type loadedEvent struct {
	gen int
	idx int

	// handle is set when the dispatch had to resolve the bundle itself,
	// so the scheduler can cache it for sibling items.
	handle Handle

	assets []model.Asset
	err    error
}
