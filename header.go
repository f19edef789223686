package buddymalloc

import "unsafe"

// header is the fixed-size descriptor placed at the front of every
// block this allocator hands out, both arena-managed and
// direct-mapped. Its layout is intrinsic to the buddy design: blocks
// are addressed by computing from header addresses, never copied.
type header struct {
	cookie uint32
	size   int64 // user-payload bytes, excluding this header
	isFree bool
	isMmap bool
	order  int32 // 0..MaxOrder for arena blocks, -1 for direct-mapped
	next   *header
	prev   *header
}

// headerSize is the fixed in-memory footprint of a header, constant
// for the life of the program.
const headerSize = int64(unsafe.Sizeof(header{}))

// headerFromPointer recovers the header preceding a payload pointer
// previously returned by Alloc/Calloc/Realloc.
func headerFromPointer(p unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(p) - uintptr(headerSize)))
}

// payload returns the address handed out to callers for this header.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Pointer(h.addr() + uintptr(headerSize))
}

func (h *header) addr() uintptr {
	return uintptr(unsafe.Pointer(h))
}

// validCookie reports whether h looks like a header this allocator
// produced. A nil or corrupted pointer, or one that never belonged to
// this allocator, fails this check and must be treated as foreign.
func (h *header) validCookie() bool {
	return h != nil && h.cookie == cookieValue
}

// footprint is the total size, header included, of the block h
// describes: for arena blocks this is Order0Size<<order, for
// direct-mapped blocks it is size+headerSize.
func (h *header) footprint() int64 {
	if h.isMmap {
		return h.size + headerSize
	}
	return Order0Size << uint(h.order)
}
