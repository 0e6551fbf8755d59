package flow

import (
	"context"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/sirupsen/logrus"
)

// Ultra runs the order/execute flow. The API both routes and lands the
// transaction; the only local work is signing, so there is no RPC
// submission or confirmation polling.
func (r *Runner) Ultra(ctx context.Context, req TradeRequest) (*Result, error) {
	start := time.Now()

	orderReq := jupiter.UltraOrderRequest{
		InputMint:  req.InputMint,
		OutputMint: req.OutputMint,
		Amount:     req.Amount,
		Taker:      r.Wallet.Address(),
	}
	if r.feeEnabled() {
		fee := r.FeeBps
		orderReq.ReferralAccount = r.FeeAccount
		orderReq.ReferralFeeBps = &fee
	}

	order, err := r.Jupiter.UltraOrder(ctx, orderReq)
	if err != nil {
		return nil, wrapAPIError("ultra order", err)
	}
	if order.Transaction == "" {
		reason := order.Error
		if reason == "" {
			reason = "no order transaction returned"
		}
		return nil, &SubmissionError{Reason: reason}
	}

	r.log().WithFields(logrus.Fields{
		"request_id": order.RequestID,
		"in_amount":  order.InAmount,
		"out_amount": order.OutAmount,
	}).Info("ultra order received")

	tx, err := decodeTransaction(order.Transaction)
	if err != nil {
		return nil, err
	}
	if err := r.signTx(tx); err != nil {
		return nil, err
	}
	signed, err := encodeTransaction(tx)
	if err != nil {
		return nil, err
	}

	exec, err := r.Jupiter.UltraExecute(ctx, jupiter.ExecuteRequest{
		SignedTransaction: signed,
		RequestID:         order.RequestID,
	})
	if err != nil {
		return nil, wrapAPIError("ultra execute", err)
	}
	if exec.Failed() {
		return nil, &SubmissionError{Reason: exec.FailureReason()}
	}

	return &Result{
		Signature: exec.Signature,
		Status:    exec.Status,
		Duration:  time.Since(start),
	}, nil
}
