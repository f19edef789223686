package buddymalloc

/*
#include <stdlib.h>
*/
import "C"

// cgoReserveArena is the Go stand-in for the original's program-break
// extension: Go exposes no portable sbrk, so instead this over-
// allocates 2*size bytes off the C heap and rounds the result up to a
// size-aligned address, exactly the way cznic-memory's roundup helper
// aligns its own backing slabs. The excess before the aligned base is
// wasted but never freed, matching "arena memory is never returned".
func cgoReserveArena(size int64) (uintptr, error) {
	raw := C.malloc(C.size_t(size * 2))
	if raw == nil {
		return 0, ErrArenaUnavailable
	}
	base := uintptr(raw)
	if rem := base % uintptr(size); rem != 0 {
		base += uintptr(size) - rem
	}
	return base, nil
}
