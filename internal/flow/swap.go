package flow

import (
	"context"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/sirupsen/logrus"
)

// Swap runs the assembled-transaction flow: /quote, /swap, then local
// decode, sign, RPC submission and confirmation.
func (r *Runner) Swap(ctx context.Context, req TradeRequest) (*Result, error) {
	start := time.Now()

	quote, err := r.quote(ctx, req)
	if err != nil {
		return nil, err
	}

	user := r.Wallet.Address()
	swapReq := jupiter.SwapRequest{
		QuoteResponse: quote,
		UserPublicKey: user,
		Payer:         user,
	}
	if r.feeEnabled() {
		swapReq.FeeAccount = r.FeeAccount
	}

	swapResp, err := r.Jupiter.Swap(ctx, swapReq)
	if err != nil {
		return nil, wrapAPIError("swap", err)
	}

	tx, err := decodeTransaction(swapResp.SwapTransaction)
	if err != nil {
		return nil, err
	}
	if err := r.signTx(tx); err != nil {
		return nil, err
	}

	return r.submitAndConfirm(ctx, tx, start)
}

func (r *Runner) quote(ctx context.Context, req TradeRequest) (*jupiter.QuoteResponse, error) {
	slippage := req.SlippageBps
	quoteReq := jupiter.QuoteRequest{
		InputMint:   req.InputMint,
		OutputMint:  req.OutputMint,
		Amount:      req.Amount,
		SlippageBps: &slippage,
	}
	if r.feeEnabled() {
		fee := r.FeeBps
		quoteReq.PlatformFeeBps = &fee
	}

	quote, err := r.Jupiter.Quote(ctx, quoteReq)
	if err != nil {
		return nil, wrapAPIError("quote", err)
	}

	r.log().WithFields(logrus.Fields{
		"in_amount":    quote.InAmount,
		"out_amount":   quote.OutAmount,
		"price_impact": quote.PriceImpactPct,
		"route_steps":  len(quote.RoutePlan),
	}).Info("quote received")

	return quote, nil
}
