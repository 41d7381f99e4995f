// Package flags holds the CLI flag definitions and setup helpers shared by
// the relayer and the owner's admin tool.
package flags

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/solenne/gift-registry-backend/common"
	"github.com/solenne/gift-registry-backend/httpserver"
)

// SetupLogger builds the process logger from the common logging flags.
func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJSONFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUIDFlag.Name)
	logService := cCtx.String(LogServiceFlag.Name)

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// ConfigureServer builds the HTTP server configuration from the common server
// flags.
func ConfigureServer(cCtx *cli.Context, logger *slog.Logger, listenAddr string) *httpserver.HTTPServerConfig {
	metricsAddr := cCtx.String(MetricsAddrFlag.Name)
	enablePprof := cCtx.Bool(PprofFlag.Name)
	drainDuration := time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second

	return &httpserver.HTTPServerConfig{
		ListenAddr:               listenAddr,
		MetricsAddr:              metricsAddr,
		Log:                      logger,
		EnablePprof:              enablePprof,
		DrainDuration:            drainDuration,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

var RPCAddrFlag = &cli.StringFlag{
	Name:  "rpc-addr",
	Value: "http://127.0.0.1:8545",
	Usage: "address to connect to RPC",
}

var RegistryAddrFlag = &cli.StringFlag{
	Name:  "registry-addr",
	Usage: "GiftRegistry contract address. 40-char hex string, 0x prefix optional",
}

var ListenAddrFlag = &cli.StringFlag{
	Name:  "listen-addr",
	Value: "127.0.0.1:8080",
	Usage: "address to listen on for API",
}

var RelayerKeyFlag = &cli.StringFlag{
	Name:    "relayer-key",
	Usage:   "hex-encoded private key paying for purchase transactions",
	EnvVars: []string{"RELAYER_PRIVATE_KEY"},
}

var RecipientPubkeyFlag = &cli.StringFlag{
	Name:    "recipient-pubkey",
	Usage:   "hex-encoded secp256k1 public key purchaser names are encrypted under",
	EnvVars: []string{"RECIPIENT_PUBKEY"},
}

var GuestPasswordFlag = &cli.StringFlag{
	Name:    "guest-password",
	Usage:   "shared password guests present on purchase",
	EnvVars: []string{"GUEST_PASSWORD"},
}

var NotifyURLFlag = &cli.StringFlag{
	Name:  "notify-url",
	Usage: "webhook endpoint for purchase notifications (optional)",
}

var MaxProbeFlag = &cli.Uint64Flag{
	Name:  "max-probe",
	Value: 1024,
	Usage: "item probing cap when the store cannot report its total count",
}

var ReadDelayFlag = &cli.DurationFlag{
	Name:  "read-delay",
	Value: 200 * time.Millisecond,
	Usage: "minimum delay between per-item store reads",
}

var RetryBaseDelayFlag = &cli.DurationFlag{
	Name:  "retry-base-delay",
	Value: 250 * time.Millisecond,
	Usage: "first backoff interval for transient store failures",
}

var DevFlag = &cli.BoolFlag{
	Name:  "dev",
	Value: false,
	Usage: "use an in-memory store seeded with sample items instead of the chain",
}

var OwnerKeyFlag = &cli.StringFlag{
	Name:    "owner-key",
	Usage:   "hex-encoded private key of the registry owner",
	EnvVars: []string{"OWNER_PRIVATE_KEY"},
}

var LogJSONFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUIDFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}
var LogServiceFlag = &cli.StringFlag{
	Name:  "log-service",
	Value: common.PackageName,
	Usage: "add 'service' tag to logs",
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Value: "127.0.0.1:8090",
	Usage: "address to listen on for Prometheus metrics",
}

var CommonFlags = []cli.Flag{
	LogJSONFlag,
	LogDebugFlag,
	LogUIDFlag,
	LogServiceFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}
