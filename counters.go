package buddymalloc

// register and unregister track a buddy block's existence: they fire
// exactly once per split (two blocks enter, the donor leaves) and
// once per merge (two blocks leave, the survivor enters), never on
// Alloc/Free directly. insertFree and removeFree track a buddy
// block's free-list membership and fire on Alloc/Free, split and
// merge alike. registerLive/unregisterLive do both jobs at once for
// direct-mapped blocks, which have no separate "free but existing"
// state: they are either live or gone.
//
// Every counter mutation in this package funnels through these six
// functions. No other code increments or decrements a counter field.

func (a *Arena) register(h *header) {
	a.allocatedBlocks++
	a.allocatedBytes += h.size
	a.metadataBytes += headerSize
}

func (a *Arena) unregister(h *header) {
	a.allocatedBlocks--
	a.allocatedBytes -= h.size
	a.metadataBytes -= headerSize
}

func (a *Arena) insertFree(h *header) {
	h.isFree = true
	a.free[h.order].insert(h)
	a.freeBlocks++
	a.freeBytes += h.size
}

func (a *Arena) removeFree(h *header) {
	a.free[h.order].remove(h)
	h.isFree = false
	a.freeBlocks--
	a.freeBytes -= h.size
}

func (a *Arena) registerLive(h *header) {
	a.direct.insert(h)
	a.allocatedBlocks++
	a.allocatedBytes += h.size
	a.metadataBytes += headerSize
}

func (a *Arena) unregisterLive(h *header) {
	a.direct.remove(h)
	a.allocatedBlocks--
	a.allocatedBytes -= h.size
	a.metadataBytes -= headerSize
}
