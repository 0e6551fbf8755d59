package jupiter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Ultra referral fees below 50 bps are rejected by the API.
const MinUltraReferralFeeBps uint16 = 50

type UltraOrderRequest struct {
	InputMint  string
	OutputMint string
	Amount     uint64
	Taker      string

	ReferralAccount string
	ReferralFeeBps  *uint16
}

type UltraOrderResponse struct {
	RequestID   string `json:"requestId"`
	Transaction string `json:"transaction"`

	InAmount  string `json:"inAmount,omitempty"`
	OutAmount string `json:"outAmount,omitempty"`

	Code  int    `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// UltraOrder requests a ready-to-sign order transaction. Unlike the
// swap flow there is no separate quote step; pricing and routing happen
// server-side.
func (c *Client) UltraOrder(ctx context.Context, req UltraOrderRequest) (*UltraOrderResponse, error) {
	if strings.TrimSpace(req.InputMint) == "" {
		return nil, fmt.Errorf("inputMint is required")
	}
	if strings.TrimSpace(req.OutputMint) == "" {
		return nil, fmt.Errorf("outputMint is required")
	}
	if req.Amount == 0 {
		return nil, fmt.Errorf("amount is required")
	}
	if strings.TrimSpace(req.Taker) == "" {
		return nil, fmt.Errorf("taker is required")
	}

	q := url.Values{}
	q.Set("inputMint", req.InputMint)
	q.Set("outputMint", req.OutputMint)
	q.Set("amount", fmt.Sprintf("%d", req.Amount))
	q.Set("taker", req.Taker)

	if req.ReferralAccount != "" && req.ReferralFeeBps != nil {
		fee := *req.ReferralFeeBps
		if fee < MinUltraReferralFeeBps {
			fee = MinUltraReferralFeeBps
		}
		q.Set("referralAccount", req.ReferralAccount)
		q.Set("referralFee", fmt.Sprintf("%d", fee))
	}

	var out UltraOrderResponse
	if err := c.getJSON(ctx, "/ultra/v1/order", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UltraExecute submits the signed order transaction. The API lands it
// on-chain itself; no direct RPC submission is needed.
func (c *Client) UltraExecute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error) {
	var out ExecuteResponse
	if err := c.postJSON(ctx, "/ultra/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
