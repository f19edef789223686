package buddymalloc

import "unsafe"

// Free releases a pointer previously returned by Alloc, Calloc or
// Realloc. A nil pointer, a foreign pointer (cookie mismatch), and a
// double free are all no-ops: Free never panics and never mutates any
// counter on those paths.
func (a *Arena) Free(p unsafe.Pointer) error {
	if p == nil {
		return nil
	}
	h := headerFromPointer(p)
	if !h.validCookie() {
		return ErrForeignPointer
	}
	if h.isFree {
		return ErrDoubleFree
	}
	if h.isMmap {
		h.isFree = true
		size := h.size
		a.unregisterLive(h)
		unmapDirect(unsafe.Pointer(h), uintptr(size+headerSize))
		return nil
	}
	a.insertFree(h)
	a.tryMerge(h)
	return nil
}
