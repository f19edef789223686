package buddymalloc

// Order0Size is the footprint, in bytes, of an order-0 buddy block,
// including its header.
const Order0Size = int64(128)

// MaxOrder is the highest buddy order the arena carves blocks into.
const MaxOrder = 10

// MaxBlockSize is the footprint of an order-MaxOrder block: the
// largest block size the buddy arena can hand out.
const MaxBlockSize = Order0Size << MaxOrder

// InitBlocks is the number of order-MaxOrder blocks the arena is
// carved into at first allocation.
const InitBlocks = 32

// ArenaSize is the total size of the one-shot backing reservation.
const ArenaSize = int64(InitBlocks) * MaxBlockSize

// MaxUserRequest caps the size argument accepted by Alloc/Calloc;
// requests above this are rejected outright.
const MaxUserRequest = int64(100000000)

// cookieValue sentinels every header this allocator has ever produced,
// arena-managed or direct-mapped, so a foreign or corrupted pointer
// can be told apart from one of ours.
const cookieValue = uint32(0xB0DDEA55)
