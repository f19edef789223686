package buddymalloc

import "unsafe"

// ptrOf returns a pointer to the first byte of b, for tests that need
// to plant a header inside ordinary Go-owned memory.
func ptrOf(b []byte) unsafe.Pointer { return unsafe.Pointer(&b[0]) }

// unsafePointerFromUintptr converts an address obtained from Arena
// bookkeeping back into a pointer, for tests that need to plant or
// inspect a header at a specific arena-relative address.
func unsafePointerFromUintptr(addr uintptr) unsafe.Pointer { return unsafe.Pointer(addr) }

// testArenaPin keeps every backing slice handed out to a test Arena
// reachable for the life of the process: the arena and its headers
// reference this memory only via uintptr, which the garbage collector
// does not treat as a pointer.
var testArenaPin [][]byte

// newTestArena returns a fresh, independent Arena backed by ordinary
// Go-owned memory instead of cgo malloc or a real mmap, by swapping
// the package-level reservation seams. This keeps the tests off the C
// heap and real mappings (the package itself still needs cgo to
// build, for cgo_arena.go), and gives every test its own arena rather
// than sharing the process-wide default one.
func newTestArena() *Arena {
	buf := make([]byte, 2*ArenaSize)
	testArenaPin = append(testArenaPin, buf)
	base := uintptr(unsafe.Pointer(&buf[0]))

	reserveArena = func(size int64) (uintptr, error) {
		aligned := base
		if rem := aligned % uintptr(size); rem != 0 {
			aligned += uintptr(size) - rem
		}
		return aligned, nil
	}
	mapDirect = func(n int64) (unsafe.Pointer, error) {
		b := make([]byte, n)
		testArenaPin = append(testArenaPin, b)
		return unsafe.Pointer(&b[0]), nil
	}
	unmapDirect = func(p unsafe.Pointer, n uintptr) {}

	return &Arena{}
}

// recomputeCounters walks the arena by address plus the direct
// mapping list from scratch, the way §8's counter-consistency
// invariant demands, independent of whatever the stored counters say.
func (a *Arena) recomputeCounters() (allocBlocks, allocBytes, freeBlocks, freeBytes, metaBytes int64) {
	addr, end := a.base, a.base+uintptr(ArenaSize)
	for addr < end {
		h := (*header)(unsafe.Pointer(addr))
		allocBlocks++
		allocBytes += h.size
		metaBytes += headerSize
		if h.isFree {
			freeBlocks++
			freeBytes += h.size
		}
		addr += uintptr(h.footprint())
	}
	for h := a.direct.head; h != nil; h = h.next {
		allocBlocks++
		allocBytes += h.size
		metaBytes += headerSize
	}
	return
}

// counterSnapshot is a comparable snapshot of an Arena's stored
// counters, for tests asserting that some operation left them
// untouched.
type counterSnapshot struct {
	allocBlocks, allocBytes, freeBlocks, freeBytes, metaBytes int64
}

func (a *Arena) snapshot() counterSnapshot {
	return counterSnapshot{a.allocatedBlocks, a.allocatedBytes, a.freeBlocks, a.freeBytes, a.metadataBytes}
}

// assertCountersConsistent fails the test if the stored counters
// disagree with a fresh walk.
func assertCountersConsistent(t interface{ Fatalf(string, ...interface{}) }, a *Arena) {
	ab, aby, fb, fby, mb := a.recomputeCounters()
	if ab != a.allocatedBlocks || aby != a.allocatedBytes || fb != a.freeBlocks ||
		fby != a.freeBytes || mb != a.metadataBytes {
		t.Fatalf("counters diverge from walk: stored(%d,%d,%d,%d,%d) walked(%d,%d,%d,%d,%d)",
			a.allocatedBlocks, a.allocatedBytes, a.freeBlocks, a.freeBytes, a.metadataBytes,
			ab, aby, fb, fby, mb)
	}
}
