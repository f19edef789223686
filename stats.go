package buddymalloc

// FreeBlocks returns the number of free buddy blocks across every
// order. Direct-mapped blocks are never "free": they are live or
// gone, so they never contribute here.
func (a *Arena) FreeBlocks() int64 { return a.freeBlocks }

// FreeBytes returns the sum of user-payload bytes across every free
// buddy block.
func (a *Arena) FreeBytes() int64 { return a.freeBytes }

// AllocatedBlocks returns the count of every block that currently
// exists, buddy or direct-mapped, free or in use.
func (a *Arena) AllocatedBlocks() int64 { return a.allocatedBlocks }

// AllocatedBytes returns the sum of user-payload bytes across every
// block that currently exists. It excludes MetadataBytes.
func (a *Arena) AllocatedBytes() int64 { return a.allocatedBytes }

// MetadataBytes returns headerSize times the number of blocks that
// currently exist.
func (a *Arena) MetadataBytes() int64 { return a.metadataBytes }

// HeaderSize returns the fixed in-memory size of a block header. It
// never changes across the program's lifetime.
func HeaderSize() int64 { return headerSize }
