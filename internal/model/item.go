package model

import "fmt"

// ItemStatus is the scheduling state of a LoadItem.
//
// Valid transitions:
//
//	Wait → Loading → Finish
//	Wait → Loading → Error
//	Error → Wait (retry reset only)
//
// Finish is terminal: a finished item is never reset or reloaded, even
// when sibling items fail and trigger a retry pass.
type ItemStatus int

const (
	// StatusWait means the item is ready for dispatch.
	StatusWait ItemStatus = iota

	// StatusLoading means the item has an outstanding load operation.
	StatusLoading

	// StatusFinish means the item loaded successfully. Terminal.
	StatusFinish

	// StatusError means the last load attempt failed. A retry pass may
	// reset the item back to StatusWait.
	StatusError
)

// String returns the lowercase name of the status.
func (s ItemStatus) String() string {
	switch s {
	case StatusWait:
		return "wait"
	case StatusLoading:
		return "loading"
	case StatusFinish:
		return "finish"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ItemKey identifies a LoadItem within a batch by bundle, path and kind.
//
// The key is a composite value rather than a joined string so that paths
// containing separator characters cannot collide. Kind is part of the
// identity because two descriptors may select different asset kinds from
// the same directory, and each needs its own progress slot.
type ItemKey struct {
	Bundle string
	Path   string
	Kind   AssetKind
}

// String formats the key for log output.
func (k ItemKey) String() string {
	return k.Bundle + ":" + k.Path
}

// LoadItem is the per-descriptor unit of scheduling work.
//
// One item is derived from each AssetDescriptor during initialization.
// After the item set is built, only Status changes; the descriptor fields
// and Expected count stay fixed for the lifetime of the batch.
type LoadItem struct {
	// Kind, Bundle, Path and IsFile mirror the source descriptor.
	Kind   AssetKind
	Bundle string
	Path   string
	IsFile bool

	// Status is the scheduling state. Owned by the scheduler loop.
	Status ItemStatus

	// Expected is the number of underlying units this item will yield,
	// precomputed during initialization. A directory item may expand to
	// many units; a file item yields one (or zero if absent).
	Expected int
}

// NewLoadItem derives an item in Wait state from a normalized descriptor.
func NewLoadItem(d AssetDescriptor, expected int) *LoadItem {
	return &LoadItem{
		Kind:     d.Kind,
		Bundle:   d.Bundle,
		Path:     d.Path,
		IsFile:   d.IsFile,
		Status:   StatusWait,
		Expected: expected,
	}
}

// Key returns the item's identity key for progress tracking and logging.
func (it *LoadItem) Key() ItemKey {
	return ItemKey{Bundle: it.Bundle, Path: it.Path, Kind: it.Kind}
}
