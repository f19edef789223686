package buddymalloc

import (
	"unsafe"

	"github.com/prataprc/buddymalloc/api"
	"github.com/prataprc/buddymalloc/diag"
)

// Arena owns a single buddy-managed region plus the direct-mapping
// sidecar for oversize requests. The zero value is a valid, not-yet-
// initialised Arena: the backing reservation happens lazily, at most
// once, on the first call to Alloc. Arena is not thread safe; callers
// sharing one across goroutines must externally serialise.
type Arena struct {
	ready   bool
	initErr error
	base    uintptr

	free   [MaxOrder + 1]list
	direct list

	allocatedBlocks int64
	allocatedBytes  int64
	freeBlocks      int64
	freeBytes       int64
	metadataBytes   int64
}

var _ api.Allocator = (*Arena)(nil)

// reserveArena and mapDirect/unmapDirect are package-level seams over
// the two OS-facing backends this allocator needs: a one-shot backing
// reservation for the arena (cgoReserveArena, in cgo_arena.go) and an
// anonymous mapping facility for the direct path (mmapReserve /
// mmapRelease, in mmap_unix.go). Tests substitute these to exercise
// failure paths without forcing a genuine OOM or mmap failure.
var (
	reserveArena = cgoReserveArena
	mapDirect    = mmapReserve
	unmapDirect  = mmapRelease
)

// ensureInit performs the one-shot arena reservation. Once initErr is
// set it is sticky: every later call returns the same error without
// retrying the reservation.
func (a *Arena) ensureInit() error {
	if a.ready {
		return nil
	}
	if a.initErr != nil {
		return a.initErr
	}
	base, err := reserveArena(ArenaSize)
	if err != nil {
		a.initErr = ErrArenaUnavailable
		return a.initErr
	}
	a.base = base
	a.carve()
	a.ready = true
	diag.Debugf("buddymalloc: arena reserved base=%#x size=%d\n", a.base, ArenaSize)
	return nil
}

// carve lays down the InitBlocks order-MaxOrder headers across the
// freshly reserved region and publishes them, in ascending address
// order, onto the top free list.
func (a *Arena) carve() {
	for i := int64(0); i < InitBlocks; i++ {
		addr := a.base + uintptr(i*MaxBlockSize)
		h := (*header)(unsafe.Pointer(addr))
		*h = header{cookie: cookieValue, size: MaxBlockSize - headerSize, order: MaxOrder}
		a.register(h)
		a.insertFree(h)
	}
}

func (a *Arena) allocDirect(userSize int64) (unsafe.Pointer, error) {
	raw, err := mapDirect(userSize + headerSize)
	if err != nil {
		return nil, ErrMappingFailed
	}
	h := (*header)(raw)
	*h = header{cookie: cookieValue, size: userSize, isMmap: true, order: -1}
	a.registerLive(h)
	diag.Tracef("buddymalloc: direct map size=%d addr=%#x\n", userSize, h.addr())
	return h.payload(), nil
}
