package buddymalloc

import "unsafe"

// split requires h free and of order k>0, off all lists. It halves
// h's footprint, drops it to order k-1, and carves a sibling header
// at the upper half with the same order, returning the sibling still
// unlinked: the caller decides whether to hand it to insertFree or
// split it again. h itself is left off every list, exactly as it was
// found; its isFree flag is whatever it already was.
func (a *Arena) split(h *header) *header {
	k := h.order
	a.unregister(h)

	footprint := Order0Size << uint(k)
	half := footprint / 2

	h.order = k - 1
	h.size = half - headerSize

	sib := (*header)(unsafe.Pointer(h.addr() + uintptr(half)))
	*sib = header{cookie: cookieValue, size: half - headerSize, order: k - 1}

	a.register(h)
	a.register(sib)

	return sib
}
