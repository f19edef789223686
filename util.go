package buddymalloc

import (
	"reflect"
	"unsafe"
)

// byteSliceAt reinterprets n bytes starting at p as a []byte, the way
// this lineage's own memcpy helpers construct slices over raw
// pointers via reflect.SliceHeader rather than copying.
func byteSliceAt(p unsafe.Pointer, n int64) []byte {
	var b []byte
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	sh.Data = uintptr(p)
	sh.Len = int(n)
	sh.Cap = int(n)
	return b
}

func zeroFill(p unsafe.Pointer, n int64) {
	if n <= 0 {
		return
	}
	clear(byteSliceAt(p, n))
}

func copyBytes(dst, src unsafe.Pointer, n int64) {
	if n <= 0 {
		return
	}
	copy(byteSliceAt(dst, n), byteSliceAt(src, n))
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
