package buddymalloc

// list is a doubly-linked, address-sorted list of block headers. It
// never touches counters: insert and remove are pure linking
// operations, the way the teacher's own freelist primitives never
// reach past their own next/prev fields. Counter bookkeeping is owned
// exclusively by the register/unregister/insertFree/removeFree family
// in counters.go.
type list struct {
	head *header
}

// insert links h into the list, keeping ascending-address order.
func (l *list) insert(h *header) {
	h.next, h.prev = nil, nil
	if l.head == nil {
		l.head = h
		return
	}
	if h.addr() < l.head.addr() {
		h.next = l.head
		l.head.prev = h
		l.head = h
		return
	}
	cur := l.head
	for cur.next != nil && cur.next.addr() < h.addr() {
		cur = cur.next
	}
	h.next = cur.next
	h.prev = cur
	if cur.next != nil {
		cur.next.prev = h
	}
	cur.next = h
}

// remove unlinks h from the list and clears its link fields.
func (l *list) remove(h *header) {
	if h.prev != nil {
		h.prev.next = h.next
	} else {
		l.head = h.next
	}
	if h.next != nil {
		h.next.prev = h.prev
	}
	h.next, h.prev = nil, nil
}

// firstFit scans from head and returns the first free block whose
// user size is at least minUserSize, or nil.
func (l *list) firstFit(minUserSize int64) *header {
	for h := l.head; h != nil; h = h.next {
		if h.isFree && h.size >= minUserSize {
			return h
		}
	}
	return nil
}
