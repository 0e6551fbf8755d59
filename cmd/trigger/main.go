// Trigger example: create an on-chain limit order (sell -make of the
// input token once -take of the output token can be taken), sign the
// order transaction and execute it. The API enforces a 5 USDC minimum.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/cli"
	"github.com/Jupiter-DevRel/go-examples/internal/config"
	"github.com/Jupiter-DevRel/go-examples/internal/flow"
	"github.com/Jupiter-DevRel/go-examples/internal/token"
	"github.com/sirupsen/logrus"
)

func main() {
	cli.LoadEnv()

	inTok := flag.String("in", "SOL", "input token symbol or mint")
	outTok := flag.String("out", "USDC", "output token symbol or mint")
	makeAmt := flag.String("make", "0.03", "amount offered, in input token units")
	takeAmt := flag.String("take", "5", "amount wanted, in output token units")
	expiry := flag.Duration("expires", 0, "order lifetime (0 = never expires)")
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
	making, err := token.ToAtomic(in, *makeAmt)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	taking, err := token.ToAtomic(out, *takeAmt)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	params := &flow.TriggerParams{
		MakingAmount: making,
		TakingAmount: taking,
	}
	if *expiry > 0 {
		params.ExpiredAt = time.Now().Add(*expiry)
	}

	runner, err := cli.NewRunner(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("failed to init runner")
		os.Exit(1)
	}
	defer runner.Wallet.Close()

	ctx, cancel := cli.SignalContext()
	defer cancel()

	res, err := runner.Trigger(ctx, flow.TradeRequest{
		InputMint:  in.Mint,
		OutputMint: out.Mint,
		Trigger:    params,
	})
	if err != nil {
		logger.WithError(err).Error("trigger order failed")
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"signature": res.Signature,
		"status":    res.Status,
		"duration":  res.Duration,
	}).Info("trigger order placed")
}
