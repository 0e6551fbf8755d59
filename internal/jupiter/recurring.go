package jupiter

import (
	"context"
	"fmt"
	"strings"
)

// RecurringTimeParams describes a time-based DCA schedule.
type RecurringTimeParams struct {
	InAmount       uint64 `json:"inAmount"`
	NumberOfOrders uint64 `json:"numberOfOrders"`
	Interval       uint64 `json:"interval"` // seconds between orders
}

type RecurringOrderParams struct {
	Time *RecurringTimeParams `json:"time,omitempty"`
}

type CreateRecurringOrderRequest struct {
	User       string               `json:"user"`
	InputMint  string               `json:"inputMint"`
	OutputMint string               `json:"outputMint"`
	Params     RecurringOrderParams `json:"params"`
}

// CreateRecurringOrder builds a DCA order transaction. The API rejects
// schedules with a total notional below 50 USDC.
func (c *Client) CreateRecurringOrder(ctx context.Context, req CreateRecurringOrderRequest) (*CreateOrderResponse, error) {
	if strings.TrimSpace(req.User) == "" {
		return nil, fmt.Errorf("user is required")
	}
	if req.Params.Time == nil {
		return nil, fmt.Errorf("time params are required")
	}
	if req.Params.Time.NumberOfOrders == 0 {
		return nil, fmt.Errorf("numberOfOrders must be > 0")
	}
	var out CreateOrderResponse
	if err := c.postJSON(ctx, "/recurring/v1/createOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecurringExecute submits the signed order-creation transaction.
func (c *Client) RecurringExecute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error) {
	var out ExecuteResponse
	if err := c.postJSON(ctx, "/recurring/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
