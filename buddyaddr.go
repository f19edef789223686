package buddymalloc

import "unsafe"

// buddyAddr computes the address of h's buddy: the uniquely-paired
// block of the same order with which h can coalesce into one block
// of the next order up. It returns false for direct-mapped blocks and
// for order-MaxOrder blocks, neither of which have a buddy.
func (a *Arena) buddyAddr(h *header) (uintptr, bool) {
	if h.isMmap || int(h.order) >= MaxOrder || h.order < 0 {
		return 0, false
	}
	footprint := uintptr(Order0Size << uint(h.order))
	offset := h.addr() - a.base
	if offset%(2*footprint) == 0 {
		return h.addr() + footprint, true
	}
	return h.addr() - footprint, true
}

// buddyOf resolves h's buddy to a header pointer, or nil if h has
// none.
func (a *Arena) buddyOf(h *header) *header {
	addr, ok := a.buddyAddr(h)
	if !ok {
		return nil
	}
	return (*header)(unsafe.Pointer(addr))
}
