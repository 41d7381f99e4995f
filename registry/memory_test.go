package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/solenne/gift-registry-backend/interfaces"
)

var (
	testOwner = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testGuest = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func details(name string) interfaces.ItemDetails {
	return interfaces.ItemDetails{
		Name:        name,
		Description: name + " description",
		URL:         "https://shop.example/" + name,
		ImageURL:    "https://img.example/" + name + ".jpg",
	}
}

func TestAddAssignsSequentialIndices(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		receipt, err := store.AddItem(ctx, details(fmt.Sprintf("item%d", i)))
		require.NoError(t, err)
		assert.NotEmpty(t, receipt.ConfirmationID)
	}

	for i := uint64(0); i < 3; i++ {
		item, err := store.Item(ctx, i)
		require.NoError(t, err)
		assert.Equal(t, i, item.ID)
		assert.Equal(t, fmt.Sprintf("item%d", i), item.Name)
		assert.False(t, item.Purchased)
		assert.False(t, item.Deleted)
		assert.Zero(t, item.PurchasedAt)
	}

	_, err := store.Item(ctx, 3)
	assert.ErrorIs(t, err, interfaces.ErrOutOfRange)
}

// Removal must never renumber: external systems hold onto indices across time.
func TestRemoveKeepsIndicesStable(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.AddItem(ctx, details(fmt.Sprintf("item%d", i)))
		require.NoError(t, err)
	}

	_, err := store.RemoveItem(ctx, 1)
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, uint64(0), all[0].ID)
	assert.Equal(t, uint64(2), all[1].ID)

	// The deleted item is still addressable and keeps its last field values.
	deleted, err := store.Item(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, "item1", deleted.Name)

	// Appending after a removal continues the index sequence.
	_, err = store.AddItem(ctx, details("item3"))
	require.NoError(t, err)
	item, err := store.Item(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "item3", item.Name)
}

func TestPurchaseExactlyOnce(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)

	store.SetCaller(testGuest)
	_, err = store.Purchase(ctx, 0, []byte("enc"))
	require.NoError(t, err)

	item, err := store.Item(ctx, 0)
	require.NoError(t, err)
	assert.True(t, item.Purchased)
	assert.Equal(t, []byte("enc"), []byte(item.EncryptedPurchaser))
	assert.NotZero(t, item.PurchasedAt)

	_, err = store.Purchase(ctx, 0, []byte("enc2"))
	assert.ErrorIs(t, err, interfaces.ErrAlreadyPurchased)

	// First writer's ciphertext is untouched by the losing attempt.
	item, err = store.Item(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("enc"), []byte(item.EncryptedPurchaser))
}

func TestPurchaseValidation(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)

	_, err = store.Purchase(ctx, 0, nil)
	assert.ErrorIs(t, err, interfaces.ErrEmptyName)

	_, err = store.Purchase(ctx, 5, []byte("enc"))
	assert.ErrorIs(t, err, interfaces.ErrOutOfRange)
}

func TestDeletedItemIsTerminal(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)
	_, err = store.RemoveItem(ctx, 0)
	require.NoError(t, err)

	_, err = store.UpdateItem(ctx, 0, details("renamed"))
	assert.ErrorIs(t, err, interfaces.ErrItemDeleted)

	_, err = store.Purchase(ctx, 0, []byte("enc"))
	assert.ErrorIs(t, err, interfaces.ErrItemDeleted)

	_, err = store.ResetItem(ctx, 0)
	assert.ErrorIs(t, err, interfaces.ErrItemDeleted)

	_, err = store.RemoveItem(ctx, 0)
	assert.ErrorIs(t, err, interfaces.ErrAlreadyDeleted)
}

func TestResetMakesItemPurchasableAgain(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)
	_, err = store.Purchase(ctx, 0, []byte("enc"))
	require.NoError(t, err)

	_, err = store.ResetItem(ctx, 0)
	require.NoError(t, err)

	item, err := store.Item(ctx, 0)
	require.NoError(t, err)
	assert.False(t, item.Purchased)
	assert.Empty(t, item.EncryptedPurchaser)
	assert.Zero(t, item.PurchasedAt)

	_, err = store.Purchase(ctx, 0, []byte("enc2"))
	assert.NoError(t, err)
}

func TestOwnerGating(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)

	store.SetCaller(testGuest)

	_, err = store.AddItem(ctx, details("sneaky"))
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)
	_, err = store.UpdateItem(ctx, 0, details("renamed"))
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)
	_, err = store.RemoveItem(ctx, 0)
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)
	_, err = store.ResetItem(ctx, 0)
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)
	_, err = store.TransferOwnership(ctx, testGuest)
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)

	// Purchasing is open to any caller.
	_, err = store.Purchase(ctx, 0, []byte("enc"))
	assert.NoError(t, err)
}

func TestTransferOwnership(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.TransferOwnership(ctx, interfaces.NullAddress)
	assert.ErrorIs(t, err, interfaces.ErrNullTarget)

	owner, err := store.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, testOwner, owner)

	_, err = store.TransferOwnership(ctx, testGuest)
	require.NoError(t, err)

	owner, err = store.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, testGuest, owner)

	// The previous owner lost its privileges.
	_, err = store.AddItem(ctx, details("item"))
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)
}

func TestConcurrentPurchasesSingleWinner(t *testing.T) {
	store := NewMemoryRegistry(testOwner)
	ctx := context.Background()

	_, err := store.AddItem(ctx, details("item0"))
	require.NoError(t, err)

	const racers = 32
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Purchase(ctx, 0, []byte(fmt.Sprintf("enc%d", i)))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, interfaces.ErrAlreadyPurchased)
		}
	}
	assert.Equal(t, 1, winners)
}

// Property test: across arbitrary add/remove/purchase/reset sequences, indices
// stay stable, deletion is monotonic, and the filtered views partition the
// non-deleted items.
func TestRegistryProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := NewMemoryRegistry(testOwner)
		ctx := context.Background()

		type model struct {
			name      string
			deleted   bool
			purchased bool
		}
		var items []model

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for step := 0; step < steps; step++ {
			op := rapid.IntRange(0, 3).Draw(t, "op")
			switch op {
			case 0: // add
				name := fmt.Sprintf("item%d", len(items))
				_, err := store.AddItem(ctx, details(name))
				require.NoError(t, err)
				items = append(items, model{name: name})
			case 1: // remove
				if len(items) == 0 {
					continue
				}
				id := rapid.IntRange(0, len(items)-1).Draw(t, "removeId")
				_, err := store.RemoveItem(ctx, uint64(id))
				if items[id].deleted {
					require.ErrorIs(t, err, interfaces.ErrAlreadyDeleted)
				} else {
					require.NoError(t, err)
					items[id].deleted = true
				}
			case 2: // purchase
				if len(items) == 0 {
					continue
				}
				id := rapid.IntRange(0, len(items)-1).Draw(t, "purchaseId")
				_, err := store.Purchase(ctx, uint64(id), []byte("enc"))
				switch {
				case items[id].deleted:
					require.ErrorIs(t, err, interfaces.ErrItemDeleted)
				case items[id].purchased:
					require.ErrorIs(t, err, interfaces.ErrAlreadyPurchased)
				default:
					require.NoError(t, err)
					items[id].purchased = true
				}
			case 3: // reset
				if len(items) == 0 {
					continue
				}
				id := rapid.IntRange(0, len(items)-1).Draw(t, "resetId")
				_, err := store.ResetItem(ctx, uint64(id))
				if items[id].deleted {
					require.ErrorIs(t, err, interfaces.ErrItemDeleted)
				} else {
					require.NoError(t, err)
					items[id].purchased = false
				}
			}
		}

		// Index stability: every item is still at its creation index with its
		// original name.
		total, err := store.TotalItems(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(len(items)), total)

		var wantCount uint64
		for id, want := range items {
			got, err := store.Item(ctx, uint64(id))
			require.NoError(t, err)
			require.Equal(t, uint64(id), got.ID)
			require.Equal(t, want.name, got.Name)
			require.Equal(t, want.deleted, got.Deleted)
			require.Equal(t, want.purchased, got.Purchased)
			if !want.deleted {
				wantCount++
			}
		}

		count, err := store.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, wantCount, count)

		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, int(wantCount), len(all))

		available, err := store.ListAvailable(ctx)
		require.NoError(t, err)
		purchased, err := store.ListPurchased(ctx)
		require.NoError(t, err)

		// Available and purchased partition the non-deleted items.
		require.Equal(t, len(all), len(available)+len(purchased))
		seen := map[uint64]bool{}
		for _, it := range available {
			require.False(t, it.Purchased)
			seen[it.ID] = true
		}
		for _, it := range purchased {
			require.True(t, it.Purchased)
			require.False(t, seen[it.ID], "item %d in both views", it.ID)
		}
	})
}
