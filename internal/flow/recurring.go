package flow

import (
	"context"
	"errors"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/sirupsen/logrus"
)

// Recurring creates a time-based DCA order. Same shape as the trigger
// flow: createOrder, sign locally, execute. Schedules with a total
// notional below 50 USDC are rejected by the API.
func (r *Runner) Recurring(ctx context.Context, req TradeRequest) (*Result, error) {
	if req.Recurring == nil {
		return nil, errors.New("recurring parameters are required")
	}
	start := time.Now()

	created, err := r.Jupiter.CreateRecurringOrder(ctx, jupiter.CreateRecurringOrderRequest{
		User:       r.Wallet.Address(),
		InputMint:  req.InputMint,
		OutputMint: req.OutputMint,
		Params: jupiter.RecurringOrderParams{
			Time: &jupiter.RecurringTimeParams{
				InAmount:       req.Recurring.InAmount,
				NumberOfOrders: req.Recurring.NumberOfOrders,
				Interval:       uint64(req.Recurring.Interval / time.Second),
			},
		},
	})
	if err != nil {
		return nil, wrapAPIError("recurring createOrder", err)
	}
	if created.Failed() {
		return nil, &SubmissionError{Reason: created.FailureReason()}
	}

	r.log().WithFields(logrus.Fields{
		"request_id": created.RequestID,
		"order":      created.Order,
	}).Info("recurring order created")

	exec, err := r.executeSigned(ctx, created, r.Jupiter.RecurringExecute)
	if err != nil {
		return nil, err
	}

	return &Result{
		Signature: exec.Signature,
		Status:    exec.Status,
		Duration:  time.Since(start),
	}, nil
}
