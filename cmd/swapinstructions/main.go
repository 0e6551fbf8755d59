// Swap-instructions example: quote, fetch the raw instruction set,
// assemble a v0 transaction locally (resolving address lookup tables
// over RPC), sign and send it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Jupiter-DevRel/go-examples/internal/cli"
	"github.com/Jupiter-DevRel/go-examples/internal/config"
	"github.com/Jupiter-DevRel/go-examples/internal/flow"
	"github.com/Jupiter-DevRel/go-examples/internal/token"
	"github.com/sirupsen/logrus"
)

func main() {
	cli.LoadEnv()

	inTok := flag.String("in", "USDC", "input token symbol or mint")
	outTok := flag.String("out", "SOL", "output token symbol or mint")
	amt := flag.String("amt", "1", "amount in human units of the input token")
	slippageBps := flag.Int("slippage-bps", 50, "slippage in bps (50 = 0.5%)")
	flag.Parse()

	logger := cli.NewLogger()
	cfg := config.Load()

	in, err := token.Lookup(*inTok)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	out, err := token.Lookup(*outTok)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	amount, err := token.ToAtomic(in, *amt)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	runner, err := cli.NewRunner(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("failed to init runner")
		os.Exit(1)
	}
	defer runner.Wallet.Close()

	ctx, cancel := cli.SignalContext()
	defer cancel()

	res, err := runner.SwapWithInstructions(ctx, flow.TradeRequest{
		InputMint:   in.Mint,
		OutputMint:  out.Mint,
		Amount:      amount,
		SlippageBps: uint16(*slippageBps),
	})
	if err != nil {
		logger.WithError(err).Error("swap-instructions failed")
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"signature": res.Signature,
		"status":    res.Status,
		"duration":  res.Duration,
	}).Info("swap-instructions confirmed")
}
