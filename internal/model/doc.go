// Package model defines the core data structures used throughout
// assetbatch.
//
// # Descriptors and Items
//
// AssetDescriptor is the caller-supplied description of a resource
// group: a kind tag, a bundle-relative path, a file/directory flag and a
// bundle name. The loader derives one LoadItem per descriptor; the item
// carries the scheduling status and the precomputed expected unit count:
//
//	d := model.AssetDescriptor{Kind: model.KindImage, Path: "sprites"}
//	d = d.Normalized() // Bundle becomes "resources"
//	item := model.NewLoadItem(d, 12)
//	fmt.Println(item.Key()) // resources:sprites
//
// # Statuses
//
// ItemStatus tracks the per-item state machine:
//
//	Wait → Loading → {Finish, Error}
//
// Error items can be reset back to Wait by a retry pass; Finish is
// terminal and survives every retry path untouched.
//
// # Assets
//
// Asset is one loaded unit: raw bytes plus decoder metadata, keyed by
// (kind, path) for registry lookup.
package model
