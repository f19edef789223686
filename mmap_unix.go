//go:build unix

package buddymalloc

import (
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapReserve obtains n bytes of anonymous, private, read/write
// memory for the direct-mapping path: the real OS facility §5 and §6
// call for, backed by golang.org/x/sys/unix rather than a hand-rolled
// syscall wrapper.
func mmapReserve(n int64) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&b[0]), nil
}

// mmapRelease unmaps the n bytes previously returned by mmapReserve.
// The slice header is reconstructed manually, the way this lineage's
// own code reinterprets raw backing memory as a []byte.
func mmapRelease(p unsafe.Pointer, n uintptr) {
	var b []byte
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	sh.Data = uintptr(p)
	sh.Len = int(n)
	sh.Cap = int(n)
	unix.Munmap(b)
}
