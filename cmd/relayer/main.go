package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/solenne/gift-registry-backend/cmd/flags"
	"github.com/solenne/gift-registry-backend/common"
	"github.com/solenne/gift-registry-backend/cryptoutils"
	"github.com/solenne/gift-registry-backend/httpserver"
	"github.com/solenne/gift-registry-backend/interfaces"
	"github.com/solenne/gift-registry-backend/metrics"
	"github.com/solenne/gift-registry-backend/notifications"
	"github.com/solenne/gift-registry-backend/registry"
)

var relayerFlags = append([]cli.Flag{
	flags.RPCAddrFlag,
	flags.RegistryAddrFlag,
	flags.ListenAddrFlag,
	flags.RelayerKeyFlag,
	flags.RecipientPubkeyFlag,
	flags.GuestPasswordFlag,
	flags.NotifyURLFlag,
	flags.MaxProbeFlag,
	flags.ReadDelayFlag,
	flags.RetryBaseDelayFlag,
	flags.DevFlag,
}, flags.CommonFlags...)

func main() {
	app := &cli.App{
		Name:  "relayer",
		Usage: "Serve the gift registry API, relaying guest purchases to the registry store",
		Flags: relayerFlags,
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			// Listing and health work without the purchase configuration;
			// an invalid key is still a hard startup error.
			var recipientKey *ecies.PublicKey
			if recipientHex := cCtx.String(flags.RecipientPubkeyFlag.Name); recipientHex == "" {
				logger.Warn("No recipient public key configured, purchase requests will be rejected")
			} else {
				var err error
				recipientKey, err = cryptoutils.ParseRecipientKey(recipientHex)
				if err != nil {
					logger.Error("Invalid recipient public key", "err", err)
					return err
				}
			}

			if cCtx.String(flags.GuestPasswordFlag.Name) == "" {
				logger.Warn("No guest password configured, purchase requests will be rejected")
			}

			var store interfaces.GiftRegistry
			var identity, location string
			var err error

			if cCtx.Bool(flags.DevFlag.Name) {
				logger.Info("Using in-memory store with sample items")
				store, identity, location = devStore(logger)
			} else {
				store, identity, location, err = chainStore(cCtx, logger)
				if err != nil {
					return err
				}
			}

			handler := httpserver.NewHandler(
				store,
				buildNotifier(cCtx, logger),
				metrics.NewRelayerMetrics(common.PackageName, prometheus.DefaultRegisterer),
				httpserver.RelayerConfig{
					GuestPassword:   cCtx.String(flags.GuestPasswordFlag.Name),
					RecipientKey:    recipientKey,
					RelayerIdentity: identity,
					StoreLocation:   location,
					MaxProbe:        cCtx.Uint64(flags.MaxProbeFlag.Name),
					ReadDelay:       cCtx.Duration(flags.ReadDelayFlag.Name),
					RetryBaseDelay:  cCtx.Duration(flags.RetryBaseDelayFlag.Name),
				},
				logger,
			)

			cfg := flags.ConfigureServer(cCtx, logger, cCtx.String(flags.ListenAddrFlag.Name))
			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Relayer is running", "store", location)
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Relayer shutdown complete")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// chainStore connects to the chain and wires a contract-backed store. The
// relayer key signs and pays for purchase transactions.
func chainStore(cCtx *cli.Context, logger *slog.Logger) (interfaces.GiftRegistry, string, string, error) {
	rpcAddress := cCtx.String(flags.RPCAddrFlag.Name)
	registryAddr := cCtx.String(flags.RegistryAddrFlag.Name)
	relayerKeyHex := cCtx.String(flags.RelayerKeyFlag.Name)

	if registryAddr == "" {
		logger.Error("registry-addr is required without --dev")
		return nil, "", "", errors.New("registry-addr is required")
	}
	if relayerKeyHex == "" {
		logger.Error("relayer-key is required without --dev")
		return nil, "", "", errors.New("relayer-key is required")
	}

	relayerKey, err := crypto.HexToECDSA(strip0x(relayerKeyHex))
	if err != nil {
		logger.Error("Invalid relayer key", "err", err)
		return nil, "", "", err
	}

	logger.Info("Connecting to Ethereum RPC", "address", rpcAddress)
	ethClient, err := ethclient.Dial(rpcAddress)
	if err != nil {
		logger.Error("Failed to dial RPC", "err", err)
		return nil, "", "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		logger.Error("Failed to fetch chain id", "err", err)
		return nil, "", "", err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(relayerKey, chainID)
	if err != nil {
		logger.Error("Failed to create transactor", "err", err)
		return nil, "", "", err
	}

	contractAddr := ethcommon.HexToAddress(registryAddr)
	client, err := registry.NewClient(ethClient, ethClient, contractAddr)
	if err != nil {
		logger.Error("Failed to create registry client", "err", err)
		return nil, "", "", err
	}
	client.SetTransactOpts(auth)

	relayerAddr := crypto.PubkeyToAddress(relayerKey.PublicKey)
	logger.Info("Registry store connected", "contract", contractAddr.Hex(), "relayer", relayerAddr.Hex(), "chainId", chainID.String())
	return client, relayerAddr.Hex(), contractAddr.Hex(), nil
}

// devStore builds a seeded in-memory store for local frontend development.
func devStore(logger *slog.Logger) (interfaces.GiftRegistry, string, string) {
	owner := ethcommon.HexToAddress("0x00000000000000000000000000000000000000d1")
	store := registry.NewMemoryRegistry(owner)

	samples := []interfaces.ItemDetails{
		{Name: "Cast iron skillet", Description: "28cm, pre-seasoned", URL: "https://shop.example.org/skillet"},
		{Name: "Wool blanket", Description: "Queen size, grey", URL: "https://shop.example.org/blanket"},
		{Name: "Espresso grinder", Description: "Conical burr", URL: "https://shop.example.org/grinder"},
	}
	for _, details := range samples {
		if _, err := store.AddItem(context.Background(), details); err != nil {
			logger.Error("Failed to seed sample item", "name", details.Name, "err", err)
		}
	}

	return store, "dev-relayer", "in-memory (dev)"
}

func buildNotifier(cCtx *cli.Context, logger *slog.Logger) notifications.Notifier {
	notifyURL := cCtx.String(flags.NotifyURLFlag.Name)
	if notifyURL == "" {
		return notifications.NopNotifier{}
	}
	logger.Info("Purchase notifications enabled", "endpoint", notifyURL)
	return notifications.NewWebhookNotifier(notifyURL, logger)
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
