// Package api defines the allocator-facing interface implemented by
// the buddymalloc Arena, kept separate from the implementation the
// way this lineage splits its own Mallocer/Mpooler contracts from
// their concrete pool types.
package api

import "unsafe"

// Allocator is the C-style allocation surface this module exposes,
// plus the introspection counters tests assert against.
type Allocator interface {
	Alloc(size int64) (unsafe.Pointer, error)
	Calloc(num, size int64) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer) error
	Realloc(ptr unsafe.Pointer, size int64) (unsafe.Pointer, error)

	FreeBlocks() int64
	FreeBytes() int64
	AllocatedBlocks() int64
	AllocatedBytes() int64
	MetadataBytes() int64
}
