package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/solenne/gift-registry-backend/cmd/flags"
	"github.com/solenne/gift-registry-backend/cryptoutils"
	"github.com/solenne/gift-registry-backend/interfaces"
	"github.com/solenne/gift-registry-backend/registry"
)

var idFlag = &cli.Uint64Flag{
	Name:     "id",
	Required: true,
	Usage:    "item id (positional index assigned at creation)",
}

var detailFlags = []cli.Flag{
	&cli.StringFlag{Name: "name", Usage: "item name"},
	&cli.StringFlag{Name: "description", Usage: "item description"},
	&cli.StringFlag{Name: "url", Usage: "product page URL"},
	&cli.StringFlag{Name: "image-url", Usage: "item image URL"},
}

func main() {
	sharedFlags := []cli.Flag{
		flags.RPCAddrFlag,
		flags.RegistryAddrFlag,
		flags.OwnerKeyFlag,
		flags.LogJSONFlag,
		flags.LogDebugFlag,
		flags.LogUIDFlag,
		flags.LogServiceFlag,
	}

	app := &cli.App{
		Name:  "registry-admin",
		Usage: "Owner tooling for the gift registry contract",
		Flags: sharedFlags,
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Append a new item to the registry",
				Flags: append([]cli.Flag{&cli.StringFlag{Name: "name", Required: true, Usage: "item name"}}, detailFlags[1:]...),
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					receipt, err := client.AddItem(ctx, detailsFromFlags(cCtx))
					if err != nil {
						return err
					}
					fmt.Println("added:", receipt.ConfirmationID)
					return nil
				}),
			},
			{
				Name:  "update",
				Usage: "Overwrite the editable fields of an item",
				Flags: append([]cli.Flag{idFlag}, detailFlags...),
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					receipt, err := client.UpdateItem(ctx, cCtx.Uint64("id"), detailsFromFlags(cCtx))
					if err != nil {
						return err
					}
					fmt.Println("updated:", receipt.ConfirmationID)
					return nil
				}),
			},
			{
				Name:  "remove",
				Usage: "Soft-delete an item; its index stays occupied",
				Flags: []cli.Flag{idFlag},
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					receipt, err := client.RemoveItem(ctx, cCtx.Uint64("id"))
					if err != nil {
						return err
					}
					fmt.Println("removed:", receipt.ConfirmationID)
					return nil
				}),
			},
			{
				Name:  "reset",
				Usage: "Clear an item's purchased state so it can be purchased again",
				Flags: []cli.Flag{idFlag},
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					receipt, err := client.ResetItem(ctx, cCtx.Uint64("id"))
					if err != nil {
						return err
					}
					fmt.Println("reset:", receipt.ConfirmationID)
					return nil
				}),
			},
			{
				Name:  "transfer",
				Usage: "Transfer registry ownership to another address",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "new-owner", Required: true, Usage: "address of the new owner"},
				},
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					newOwner := ethcommon.HexToAddress(cCtx.String("new-owner"))
					receipt, err := client.TransferOwnership(ctx, newOwner)
					if err != nil {
						return err
					}
					fmt.Println("transferred:", receipt.ConfirmationID)
					return nil
				}),
			},
			{
				Name:  "list",
				Usage: "Print items as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "filter", Value: "all", Usage: "all, available, or purchased"},
				},
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					var items []interfaces.Item
					var err error
					switch filter := cCtx.String("filter"); filter {
					case "all":
						items, err = client.ListAll(ctx)
					case "available":
						items, err = client.ListAvailable(ctx)
					case "purchased":
						items, err = client.ListPurchased(ctx)
					default:
						return fmt.Errorf("unknown filter: %s", filter)
					}
					if err != nil {
						return err
					}

					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(items)
				}),
			},
			{
				Name:  "reveal",
				Usage: "Decrypt who purchased an item, using the owner key",
				Flags: []cli.Flag{idFlag},
				Action: withClient(func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error {
					item, err := client.Item(ctx, cCtx.Uint64("id"))
					if err != nil {
						return err
					}
					if !item.Purchased {
						fmt.Printf("item %d (%s) has not been purchased\n", item.ID, item.Name)
						return nil
					}

					name, err := cryptoutils.DecryptPurchaserName(cCtx.String(flags.OwnerKeyFlag.Name), item.EncryptedPurchaser)
					if err != nil {
						return fmt.Errorf("could not decrypt purchaser name: %w", err)
					}
					fmt.Printf("item %d (%s) purchased by %s at %s\n",
						item.ID, item.Name, name, time.Unix(int64(item.PurchasedAt), 0).UTC().Format(time.RFC3339))
					return nil
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withClient dials the chain, builds an owner-keyed registry client, and runs
// the subcommand action with a bounded context.
func withClient(action func(ctx context.Context, cCtx *cli.Context, client *registry.Client) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		logger := flags.SetupLogger(cCtx)

		registryAddr := cCtx.String(flags.RegistryAddrFlag.Name)
		if registryAddr == "" {
			return errors.New("registry-addr is required")
		}
		ownerKeyHex := cCtx.String(flags.OwnerKeyFlag.Name)
		if ownerKeyHex == "" {
			return errors.New("owner-key is required")
		}

		ownerKey, err := crypto.HexToECDSA(strip0x(ownerKeyHex))
		if err != nil {
			return fmt.Errorf("invalid owner key: %w", err)
		}

		ethClient, err := ethclient.Dial(cCtx.String(flags.RPCAddrFlag.Name))
		if err != nil {
			return fmt.Errorf("failed to dial RPC: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		chainID, err := ethClient.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch chain id: %w", err)
		}
		auth, err := bind.NewKeyedTransactorWithChainID(ownerKey, chainID)
		if err != nil {
			return fmt.Errorf("failed to create transactor: %w", err)
		}

		client, err := registry.NewClient(ethClient, ethClient, ethcommon.HexToAddress(registryAddr))
		if err != nil {
			return fmt.Errorf("failed to create registry client: %w", err)
		}
		client.SetTransactOpts(auth)

		logger.Debug("Registry client ready", "contract", registryAddr, "owner", crypto.PubkeyToAddress(ownerKey.PublicKey).Hex())
		return action(ctx, cCtx, client)
	}
}

func detailsFromFlags(cCtx *cli.Context) interfaces.ItemDetails {
	return interfaces.ItemDetails{
		Name:        cCtx.String("name"),
		Description: cCtx.String("description"),
		URL:         cCtx.String("url"),
		ImageURL:    cCtx.String("image-url"),
	}
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
