package registry

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/solenne/gift-registry-backend/interfaces"
)

// MemoryRegistry is an in-process implementation of interfaces.GiftRegistry
// with the same lifecycle semantics as the on-chain contract. It backs the
// relayer's dev mode and the test suites.
//
// The store mirrors the contract's caller model: mutations are attributed to
// the identity set with SetCaller, the way transactions are attributed to the
// transactor key on chain. The creator starts out as both owner and caller.
type MemoryRegistry struct {
	mu     sync.Mutex
	owner  common.Address
	caller common.Address
	items  []interfaces.Item

	readHook func(id uint64) error
	now      func() time.Time
}

// NewMemoryRegistry creates an empty store owned by owner.
func NewMemoryRegistry(owner common.Address) *MemoryRegistry {
	return &MemoryRegistry{
		owner:  owner,
		caller: owner,
		now:    time.Now,
	}
}

// SetCaller attributes subsequent mutations to addr.
func (m *MemoryRegistry) SetCaller(addr common.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.caller = addr
}

// SetReadHook installs a fault-injection hook invoked before every Item read
// with the requested id. A non-nil return is surfaced to the caller in place
// of the item. Used by relayer tests to simulate upstream failures.
func (m *MemoryRegistry) SetReadHook(hook func(id uint64) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readHook = hook
}

// Owner returns the current registry owner.
func (m *MemoryRegistry) Owner(ctx context.Context) (common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owner, nil
}

// TotalItems returns the length of the item list, deleted items included.
func (m *MemoryRegistry) TotalItems(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint64(len(m.items)), nil
}

// Count returns the number of non-deleted items.
func (m *MemoryRegistry) Count(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n uint64
	for _, it := range m.items {
		if !it.Deleted {
			n++
		}
	}
	return n, nil
}

// Item returns the item at id regardless of its deleted or purchased state.
func (m *MemoryRegistry) Item(ctx context.Context, id uint64) (interfaces.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readHook != nil {
		if err := m.readHook(id); err != nil {
			return interfaces.Item{}, err
		}
	}
	if id >= uint64(len(m.items)) {
		return interfaces.Item{}, interfaces.ErrOutOfRange
	}
	return m.items[id], nil
}

// ListAll returns all non-deleted items in index order.
func (m *MemoryRegistry) ListAll(ctx context.Context) ([]interfaces.Item, error) {
	return m.list(func(it interfaces.Item) bool { return !it.Deleted })
}

// ListAvailable returns non-deleted, unpurchased items in index order.
func (m *MemoryRegistry) ListAvailable(ctx context.Context) ([]interfaces.Item, error) {
	return m.list(interfaces.Item.Available)
}

// ListPurchased returns non-deleted, purchased items in index order.
func (m *MemoryRegistry) ListPurchased(ctx context.Context) ([]interfaces.Item, error) {
	return m.list(func(it interfaces.Item) bool { return !it.Deleted && it.Purchased })
}

func (m *MemoryRegistry) list(keep func(interfaces.Item) bool) ([]interfaces.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]interfaces.Item, 0, len(m.items))
	for _, it := range m.items {
		if keep(it) {
			items = append(items, it)
		}
	}
	return items, nil
}

// AddItem appends a new unpurchased item and assigns it the next index.
// Owner only.
func (m *MemoryRegistry) AddItem(ctx context.Context, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.caller != m.owner {
		return interfaces.Receipt{}, interfaces.ErrNotOwner
	}

	m.items = append(m.items, interfaces.Item{
		ID:          uint64(len(m.items)),
		Name:        details.Name,
		Description: details.Description,
		URL:         details.URL,
		ImageURL:    details.ImageURL,
	})
	return receipt(), nil
}

// UpdateItem overwrites the four editable fields of a non-deleted item.
// Owner only.
func (m *MemoryRegistry) UpdateItem(ctx context.Context, id uint64, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, err := m.mutable(id)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	it.Name = details.Name
	it.Description = details.Description
	it.URL = details.URL
	it.ImageURL = details.ImageURL
	return receipt(), nil
}

// RemoveItem soft-deletes an item. The deleted flag is monotonic; other items
// keep their indices.
func (m *MemoryRegistry) RemoveItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.caller != m.owner {
		return interfaces.Receipt{}, interfaces.ErrNotOwner
	}
	if id >= uint64(len(m.items)) {
		return interfaces.Receipt{}, interfaces.ErrOutOfRange
	}
	if m.items[id].Deleted {
		return interfaces.Receipt{}, interfaces.ErrAlreadyDeleted
	}

	m.items[id].Deleted = true
	return receipt(), nil
}

// Purchase marks an unpurchased, non-deleted item as purchased. Any caller.
// Under concurrent purchases of the same item the mutex arbitrates: exactly
// one succeeds, the rest observe ErrAlreadyPurchased.
func (m *MemoryRegistry) Purchase(ctx context.Context, id uint64, encryptedName []byte) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(encryptedName) == 0 {
		return interfaces.Receipt{}, interfaces.ErrEmptyName
	}
	if id >= uint64(len(m.items)) {
		return interfaces.Receipt{}, interfaces.ErrOutOfRange
	}
	it := &m.items[id]
	if it.Deleted {
		return interfaces.Receipt{}, interfaces.ErrItemDeleted
	}
	if it.Purchased {
		return interfaces.Receipt{}, interfaces.ErrAlreadyPurchased
	}

	it.Purchased = true
	it.EncryptedPurchaser = append([]byte(nil), encryptedName...)
	it.PurchasedAt = uint64(m.now().Unix())
	return receipt(), nil
}

// ResetItem clears the purchased state of a non-deleted item, making it
// purchasable again. Owner only.
func (m *MemoryRegistry) ResetItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, err := m.mutable(id)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	it.Purchased = false
	it.EncryptedPurchaser = nil
	it.PurchasedAt = 0
	return receipt(), nil
}

// TransferOwnership replaces the registry owner. The zero address is rejected.
func (m *MemoryRegistry) TransferOwnership(ctx context.Context, newOwner common.Address) (interfaces.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.caller != m.owner {
		return interfaces.Receipt{}, interfaces.ErrNotOwner
	}
	if newOwner == interfaces.NullAddress {
		return interfaces.Receipt{}, interfaces.ErrNullTarget
	}

	m.owner = newOwner
	return receipt(), nil
}

// mutable runs the shared owner-gated mutation preconditions and returns a
// pointer into the item slice. Callers must hold the mutex.
func (m *MemoryRegistry) mutable(id uint64) (*interfaces.Item, error) {
	if m.caller != m.owner {
		return nil, interfaces.ErrNotOwner
	}
	if id >= uint64(len(m.items)) {
		return nil, interfaces.ErrOutOfRange
	}
	if m.items[id].Deleted {
		return nil, interfaces.ErrItemDeleted
	}
	return &m.items[id], nil
}

func receipt() interfaces.Receipt {
	return interfaces.Receipt{ConfirmationID: uuid.NewString()}
}
