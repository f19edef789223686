package buddymalloc

import "errors"

// Sentinel errors classifying every silently-handled failure path this
// package exposes. None of these ever reach the package-level
// Alloc/Calloc/Free/Realloc facade, which stays null/no-op on error;
// they exist so a caller holding an *Arena directly (tests, chiefly)
// can assert which condition fired.
var (
	ErrRequestTooSmall  = errors.New("buddymalloc: request size must be greater than zero")
	ErrRequestTooLarge  = errors.New("buddymalloc: request exceeds maximum user request size")
	ErrArenaUnavailable = errors.New("buddymalloc: arena reservation failed")
	ErrArenaExhausted   = errors.New("buddymalloc: no free block of sufficient order")
	ErrMappingFailed    = errors.New("buddymalloc: direct mapping failed")
	ErrForeignPointer   = errors.New("buddymalloc: pointer not owned by this allocator")
	ErrDoubleFree       = errors.New("buddymalloc: block already free")
	ErrReallocToZero    = errors.New("buddymalloc: realloc to zero size")
)
