package buddymalloc

// tryMerge requires h free and already linked into free-list h.order.
// It repeatedly finds h's buddy, and while that buddy is a valid
// arena block, free, not direct-mapped, and of exactly h's order,
// unlinks both, keeps the lower address as survivor, doubles its
// footprint, bumps its order, and re-links it into the next free
// list. It stops at order MaxOrder or the first buddy that fails any
// of those conditions.
func (a *Arena) tryMerge(h *header) {
	for int(h.order) < MaxOrder {
		buddy := a.buddyOf(h)
		if buddy == nil || !buddy.validCookie() || buddy.isMmap || !buddy.isFree || buddy.order != h.order {
			return
		}

		a.removeFree(h)
		a.removeFree(buddy)
		a.unregister(h)
		a.unregister(buddy)

		survivor := h
		if buddy.addr() < survivor.addr() {
			survivor = buddy
		}
		survivor.order++
		survivor.size = (Order0Size << uint(survivor.order)) - headerSize

		a.register(survivor)
		a.insertFree(survivor)

		h = survivor
	}
}
