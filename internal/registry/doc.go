// Package registry stores loaded assets for later retrieval.
//
// The Store implements the loader's Sink contract: finished items hand
// their assets over together with the batch tag, and callers look them up
// afterwards by (kind, path) or by tag. Storage is in-memory only; the
// loader owns no persistence.
package registry
