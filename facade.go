package buddymalloc

import "unsafe"

// defaultArena backs the package-level Alloc/Calloc/Free/Realloc
// facade: the process-wide allocator instance, lazily reserved on
// first use. Tests that need an isolated allocator construct their
// own &Arena{} directly instead of going through this facade, the
// same way this lineage's own tests build a pool or mempool value
// straight from its constructor rather than through a shared global.
var defaultArena = &Arena{}

// Alloc reserves size bytes on the default allocator and returns a
// pointer to the payload, or nil on any failure. See Arena.Alloc for
// the classified error every failure silently collapses into here.
func Alloc(size int64) unsafe.Pointer {
	ptr, _ := defaultArena.Alloc(size)
	return ptr
}

// Calloc allocates and zeroes room for num elements of size bytes
// each on the default allocator, or returns nil on any failure.
func Calloc(num, size int64) unsafe.Pointer {
	ptr, _ := defaultArena.Calloc(num, size)
	return ptr
}

// Free releases a pointer previously returned by Alloc, Calloc or
// Realloc on the default allocator. Nil, foreign and already-free
// pointers are silently ignored.
func Free(p unsafe.Pointer) {
	defaultArena.Free(p)
}

// Realloc resizes a pointer previously returned by the default
// allocator, or returns nil on failure.
func Realloc(p unsafe.Pointer, size int64) unsafe.Pointer {
	ptr, _ := defaultArena.Realloc(p, size)
	return ptr
}

// FreeBlocks returns FreeBlocks() of the default allocator.
func FreeBlocks() int64 { return defaultArena.FreeBlocks() }

// FreeBytes returns FreeBytes() of the default allocator.
func FreeBytes() int64 { return defaultArena.FreeBytes() }

// AllocatedBlocks returns AllocatedBlocks() of the default allocator.
func AllocatedBlocks() int64 { return defaultArena.AllocatedBlocks() }

// AllocatedBytes returns AllocatedBytes() of the default allocator.
func AllocatedBytes() int64 { return defaultArena.AllocatedBytes() }

// MetadataBytes returns MetadataBytes() of the default allocator.
func MetadataBytes() int64 { return defaultArena.MetadataBytes() }
