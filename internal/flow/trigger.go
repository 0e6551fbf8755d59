package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/sirupsen/logrus"
)

// Trigger creates an on-chain limit order: createOrder returns the
// order transaction, which is signed locally and handed back to the
// execute endpoint. Orders below the 5 USDC minimum come back as a
// rejection with no transaction.
func (r *Runner) Trigger(ctx context.Context, req TradeRequest) (*Result, error) {
	if req.Trigger == nil {
		return nil, errors.New("trigger parameters are required")
	}
	start := time.Now()

	user := r.Wallet.Address()
	params := jupiter.TriggerOrderParams{
		MakingAmount: fmt.Sprintf("%d", req.Trigger.MakingAmount),
		TakingAmount: fmt.Sprintf("%d", req.Trigger.TakingAmount),
	}
	if !req.Trigger.ExpiredAt.IsZero() {
		params.ExpiredAt = fmt.Sprintf("%d", req.Trigger.ExpiredAt.Unix())
	}
	if r.feeEnabled() {
		fee := r.FeeBps
		params.FeeBps = &fee
	}

	created, err := r.Jupiter.CreateTriggerOrder(ctx, jupiter.CreateTriggerOrderRequest{
		InputMint:  req.InputMint,
		OutputMint: req.OutputMint,
		Maker:      user,
		Payer:      user,
		Params:     params,
	})
	if err != nil {
		return nil, wrapAPIError("trigger createOrder", err)
	}
	if created.Failed() {
		return nil, &SubmissionError{Reason: created.FailureReason()}
	}

	r.log().WithFields(logrus.Fields{
		"request_id": created.RequestID,
		"order":      created.Order,
	}).Info("trigger order created")

	exec, err := r.executeSigned(ctx, created, r.Jupiter.TriggerExecute)
	if err != nil {
		return nil, err
	}

	return &Result{
		Signature: exec.Signature,
		Status:    exec.Status,
		Duration:  time.Since(start),
	}, nil
}

// executeSigned decodes and signs a created order transaction, then
// submits it through the given execute endpoint.
func (r *Runner) executeSigned(
	ctx context.Context,
	created *jupiter.CreateOrderResponse,
	execute func(context.Context, jupiter.ExecuteRequest) (*jupiter.ExecuteResponse, error),
) (*jupiter.ExecuteResponse, error) {
	tx, err := decodeTransaction(created.Transaction)
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

	exec, err := execute(ctx, jupiter.ExecuteRequest{
		SignedTransaction: signed,
		RequestID:         created.RequestID,
	})
	if err != nil {
		return nil, wrapAPIError("execute", err)
	}
	if exec.Failed() {
		return nil, &SubmissionError{Reason: exec.FailureReason()}
	}
	return exec, nil
}
