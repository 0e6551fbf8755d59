package jupiter

import (
	"context"
	"fmt"
	"strings"
)

type TriggerOrderParams struct {
	MakingAmount string `json:"makingAmount"`
	TakingAmount string `json:"takingAmount"`

	// Unix seconds; zero means the order never expires.
	ExpiredAt string  `json:"expiredAt,omitempty"`
	FeeBps    *uint16 `json:"feeBps,omitempty"`
}

type CreateTriggerOrderRequest struct {
	InputMint  string             `json:"inputMint"`
	OutputMint string             `json:"outputMint"`
	Maker      string             `json:"maker"`
	Payer      string             `json:"payer"`
	Params     TriggerOrderParams `json:"params"`
}

// CreateTriggerOrder builds an on-chain limit order transaction. Orders
// below 5 USDC notional are rejected by the API.
func (c *Client) CreateTriggerOrder(ctx context.Context, req CreateTriggerOrderRequest) (*CreateOrderResponse, error) {
	if strings.TrimSpace(req.Maker) == "" {
		return nil, fmt.Errorf("maker is required")
	}
	if req.Params.MakingAmount == "" || req.Params.TakingAmount == "" {
		return nil, fmt.Errorf("makingAmount and takingAmount are required")
	}
	var out CreateOrderResponse
	if err := c.postJSON(ctx, "/trigger/v1/createOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TriggerExecute submits the signed order-creation transaction.
func (c *Client) TriggerExecute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error) {
	var out ExecuteResponse
	if err := c.postJSON(ctx, "/trigger/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
