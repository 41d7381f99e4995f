package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/solenne/gift-registry-backend/bindings/giftregistry"
	"github.com/solenne/gift-registry-backend/interfaces"
)

// ErrNoTransactOpts is returned when a mutation is attempted without first
// setting transaction options.
var ErrNoTransactOpts = errors.New("no authorized transactor available")

// Client implements interfaces.GiftRegistry against a GiftRegistry contract
// deployed on an Ethereum-compatible chain. Reads are plain contract calls;
// mutations are signed transactions paid for by the configured transactor (the
// relayer, when it submits purchases on behalf of guests).
type Client struct {
	contract *giftregistry.GiftRegistry
	backend  bind.DeployBackend
	address  common.Address
	auth     *bind.TransactOpts
}

// NewClient creates a client for the GiftRegistry contract at the given
// address. It requires a ContractBackend for reads and a DeployBackend for
// waiting on transaction receipts.
func NewClient(client bind.ContractBackend, backend bind.DeployBackend, address common.Address) (*Client, error) {
	contract, err := giftregistry.NewGiftRegistry(address, client)
	if err != nil {
		return nil, err
	}

	return &Client{
		contract: contract,
		backend:  backend,
		address:  address,
	}, nil
}

// SetTransactOpts sets the transaction options required for mutations. This
// must be called before using any method that sends transactions to the chain.
func (c *Client) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// Address returns the contract address this client is bound to.
func (c *Client) Address() common.Address {
	return c.address
}

// Owner returns the current registry owner.
func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	owner, err := c.contract.Owner(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, classifyError(err)
	}
	return owner, nil
}

// TotalItems returns the length of the underlying gift list, deleted items
// included.
func (c *Client) TotalItems(ctx context.Context) (uint64, error) {
	total, err := c.contract.TotalGifts(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, classifyError(err)
	}
	return total.Uint64(), nil
}

// Count returns the number of non-deleted items.
func (c *Client) Count(ctx context.Context) (uint64, error) {
	count, err := c.contract.ActiveGiftCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, classifyError(err)
	}
	return count.Uint64(), nil
}

// Item returns the item at id regardless of its deleted or purchased state.
func (c *Client) Item(ctx context.Context, id uint64) (interfaces.Item, error) {
	gift, err := c.contract.GetGift(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(id))
	if err != nil {
		return interfaces.Item{}, classifyError(err)
	}
	return giftToItem(id, gift), nil
}

// ListAll returns all non-deleted items in index order.
func (c *Client) ListAll(ctx context.Context) ([]interfaces.Item, error) {
	return c.list(ctx, func(it interfaces.Item) bool { return !it.Deleted })
}

// ListAvailable returns non-deleted, unpurchased items in index order.
func (c *Client) ListAvailable(ctx context.Context) ([]interfaces.Item, error) {
	return c.list(ctx, interfaces.Item.Available)
}

// ListPurchased returns non-deleted, purchased items in index order.
func (c *Client) ListPurchased(ctx context.Context) ([]interfaces.Item, error) {
	return c.list(ctx, func(it interfaces.Item) bool { return !it.Deleted && it.Purchased })
}

// list fetches the full underlying gift array in one call and filters locally.
// The contract returns raw storage, deleted entries included, so positional
// indices map directly to item ids.
func (c *Client) list(ctx context.Context, keep func(interfaces.Item) bool) ([]interfaces.Item, error) {
	gifts, err := c.contract.AllGifts(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, classifyError(err)
	}

	items := make([]interfaces.Item, 0, len(gifts))
	for id, gift := range gifts {
		item := giftToItem(uint64(id), gift)
		if keep(item) {
			items = append(items, item)
		}
	}
	return items, nil
}

// AddItem appends a new unpurchased item. Owner only.
func (c *Client) AddItem(ctx context.Context, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.AddGift(opts, details.Name, details.Description, details.URL, details.ImageURL)
	})
}

// UpdateItem overwrites the editable fields of a non-deleted item. Owner only.
func (c *Client) UpdateItem(ctx context.Context, id uint64, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.UpdateGift(opts, new(big.Int).SetUint64(id), details.Name, details.Description, details.URL, details.ImageURL)
	})
}

// RemoveItem soft-deletes an item. Owner only.
func (c *Client) RemoveItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.RemoveGift(opts, new(big.Int).SetUint64(id))
	})
}

// Purchase marks an item as purchased, storing the encrypted purchaser name.
// The contract is the sole arbiter of the already-purchased condition: a
// transaction that loses a race reverts and surfaces ErrAlreadyPurchased here.
func (c *Client) Purchase(ctx context.Context, id uint64, encryptedName []byte) (interfaces.Receipt, error) {
	if len(encryptedName) == 0 {
		return interfaces.Receipt{}, interfaces.ErrEmptyName
	}
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.PurchaseGift(opts, new(big.Int).SetUint64(id), encryptedName)
	})
}

// ResetItem clears the purchased state of a non-deleted item. Owner only.
func (c *Client) ResetItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.ResetGift(opts, new(big.Int).SetUint64(id))
	})
}

// TransferOwnership replaces the registry owner. Owner only.
func (c *Client) TransferOwnership(ctx context.Context, newOwner common.Address) (interfaces.Receipt, error) {
	if newOwner == interfaces.NullAddress {
		return interfaces.Receipt{}, interfaces.ErrNullTarget
	}
	return c.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.TransferOwnership(opts, newOwner)
	})
}

// transact submits a mutation and waits for it to be mined. The transaction
// hash is the confirmation id proving the mutation was applied.
func (c *Client) transact(ctx context.Context, fn func(*bind.TransactOpts) (*types.Transaction, error)) (interfaces.Receipt, error) {
	if c.auth == nil {
		return interfaces.Receipt{}, ErrNoTransactOpts
	}

	opts := *c.auth
	opts.Context = ctx

	tx, err := fn(&opts)
	if err != nil {
		return interfaces.Receipt{}, classifyError(err)
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return interfaces.Receipt{}, classifyError(err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return interfaces.Receipt{}, fmt.Errorf("transaction %s reverted on chain", tx.Hash().Hex())
	}

	return interfaces.Receipt{ConfirmationID: tx.Hash().Hex()}, nil
}

func giftToItem(id uint64, gift giftregistry.GiftRegistryGift) interfaces.Item {
	var purchasedAt uint64
	if gift.PurchasedAt != nil {
		purchasedAt = gift.PurchasedAt.Uint64()
	}
	return interfaces.Item{
		ID:                 id,
		Name:               gift.Name,
		Description:        gift.Description,
		URL:                gift.Url,
		ImageURL:           gift.ImageUrl,
		Purchased:          gift.Purchased,
		EncryptedPurchaser: gift.EncryptedPurchaser,
		PurchasedAt:        purchasedAt,
		Deleted:            gift.Deleted,
	}
}
