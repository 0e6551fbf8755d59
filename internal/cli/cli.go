// Package cli holds the setup shared by every example binary: .env
// loading, logger construction and flow runner wiring.
package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/Jupiter-DevRel/go-examples/internal/config"
	"github.com/Jupiter-DevRel/go-examples/internal/flow"
	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/Jupiter-DevRel/go-examples/internal/wallet"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads the repository-root .env so the examples can be run
// from any working directory.
func LoadEnv() {
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))
	_ = godotenv.Load() // a .env in the working directory wins
}

func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// NewRunner wires a flow runner from config: Jupiter client, wallet
// and fee settings. The caller owns the wallet and must Close it.
func NewRunner(cfg *config.Config, logger *logrus.Logger) (*flow.Runner, error) {
	w, err := wallet.NewWallet(wallet.WalletConfig{
		RPCURL:            cfg.RPCURL,
		Timeout:           cfg.HTTPTimeout,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
		Logger:            logger,
		SecretKey:         cfg.SecretKey,
		KeypairPath:       cfg.KeypairPath,
		DefaultCommitment: cfg.Commitment,
	})
	if err != nil {
		return nil, err
	}

	jup := jupiter.NewClient(jupiter.ClientConfig{
		BaseURL: cfg.JupiterBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
	})

	runner := &flow.Runner{
		Jupiter:        jup,
		Wallet:         w,
		Logger:         logger,
		Commitment:     cfg.Commitment,
		ConfirmTimeout: cfg.ConfirmTimeout,
	}
	if account, bps, ok := cfg.IntegratorFee(); ok {
		runner.FeeAccount = account
		runner.FeeBps = bps
	}

	logger.WithField("wallet", w.Address()).Info("wallet loaded")
	return runner, nil
}

// SignalContext returns a context cancelled on SIGINT/SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}
