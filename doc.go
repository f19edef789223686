// Package buddymalloc implements a user-space buddy-system allocator
// backed by a one-shot 4MiB arena, with a direct-mapping fallback for
// requests too large for the arena's largest block size.
//
// The package exposes a minimal C-style allocation surface (Alloc,
// Calloc, Free, Realloc) as package-level functions operating on a
// process-wide default Arena, and a set of introspection counters
// under Stats-style accessor methods for tests. Types and functions
// exported by this package are not thread safe: callers sharing an
// Arena across goroutines must externally serialise access.
package buddymalloc
