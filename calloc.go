package buddymalloc

import "unsafe"

// Calloc allocates room for num elements of size bytes each and zeros
// the entire payload before returning it. An overflowing num*size is
// rejected the same way an over-large Alloc is.
func (a *Arena) Calloc(num, size int64) (unsafe.Pointer, error) {
	if num <= 0 || size <= 0 {
		return nil, ErrRequestTooSmall
	}
	total := num * size
	if total/num != size {
		return nil, ErrRequestTooLarge
	}
	ptr, err := a.Alloc(total)
	if err != nil {
		return nil, err
	}
	zeroFill(ptr, total)
	return ptr, nil
}
