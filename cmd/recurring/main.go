// Recurring example: create a DCA order that splits -amt of the input
// token across -orders trades spaced -interval apart, sign the order
// transaction and execute it. The API enforces a 50 USDC total minimum.
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
	amt := flag.String("amt", "0.05", "total input amount across all orders, in input token units")
	orders := flag.Uint64("orders", 2, "number of orders in the schedule")
	interval := flag.Duration("interval", 24*time.Hour, "time between orders")
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
	if *orders == 0 {
		fmt.Println("missing -orders (must be > 0)")
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

	res, err := runner.Recurring(ctx, flow.TradeRequest{
		InputMint:  in.Mint,
		OutputMint: out.Mint,
		Recurring: &flow.RecurringParams{
			InAmount:       amount,
			NumberOfOrders: *orders,
			Interval:       *interval,
		},
	})
	if err != nil {
		logger.WithError(err).Error("recurring order failed")
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"signature": res.Signature,
		"status":    res.Status,
		"duration":  res.Duration,
	}).Info("recurring order placed")
}
