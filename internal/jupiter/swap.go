package jupiter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Quote asks the aggregator for a priced route.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if strings.TrimSpace(req.InputMint) == "" {
		return nil, fmt.Errorf("inputMint is required")
	}
	if strings.TrimSpace(req.OutputMint) == "" {
		return nil, fmt.Errorf("outputMint is required")
	}
	if req.Amount == 0 {
		return nil, fmt.Errorf("amount is required")
	}

	q := url.Values{}
	q.Set("inputMint", req.InputMint)
	q.Set("outputMint", req.OutputMint)
	q.Set("amount", fmt.Sprintf("%d", req.Amount))

	if req.SlippageBps != nil {
		q.Set("slippageBps", fmt.Sprintf("%d", *req.SlippageBps))
	}
	if req.SwapMode != "" {
		q.Set("swapMode", req.SwapMode)
	}
	if len(req.Dexes) > 0 {
		q.Set("dexes", strings.Join(req.Dexes, ","))
	}
	if len(req.ExcludeDexes) > 0 {
		q.Set("excludeDexes", strings.Join(req.ExcludeDexes, ","))
	}
	if req.RestrictIntermediateTokens != nil {
		q.Set("restrictIntermediateTokens", fmt.Sprintf("%t", *req.RestrictIntermediateTokens))
	}
	if req.OnlyDirectRoutes != nil {
		q.Set("onlyDirectRoutes", fmt.Sprintf("%t", *req.OnlyDirectRoutes))
	}
	if req.AsLegacyTransaction != nil {
		q.Set("asLegacyTransaction", fmt.Sprintf("%t", *req.AsLegacyTransaction))
	}
	if req.PlatformFeeBps != nil {
		q.Set("platformFeeBps", fmt.Sprintf("%d", *req.PlatformFeeBps))
	}
	if req.MaxAccounts != nil {
		q.Set("maxAccounts", fmt.Sprintf("%d", *req.MaxAccounts))
	}

	var out QuoteResponse
	if err := c.getJSON(ctx, "/swap/v1/quote", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SwapRequest struct {
	QuoteResponse *QuoteResponse `json:"quoteResponse"`
	UserPublicKey string         `json:"userPublicKey"`
	Payer         string         `json:"payer,omitempty"`
	FeeAccount    string         `json:"feeAccount,omitempty"`

	WrapAndUnwrapSol        *bool `json:"wrapAndUnwrapSol,omitempty"`
	DynamicComputeUnitLimit *bool `json:"dynamicComputeUnitLimit,omitempty"`
}

type SwapResponse struct {
	SwapTransaction      string `json:"swapTransaction"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// Swap exchanges a quote for a ready-to-sign serialized transaction.
func (c *Client) Swap(ctx context.Context, req SwapRequest) (*SwapResponse, error) {
	if req.QuoteResponse == nil {
		return nil, fmt.Errorf("quoteResponse is required")
	}
	if strings.TrimSpace(req.UserPublicKey) == "" {
		return nil, fmt.Errorf("userPublicKey is required")
	}
	var out SwapResponse
	if err := c.postJSON(ctx, "/swap/v1/swap", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SwapInstructionsRequest struct {
	QuoteResponse *QuoteResponse `json:"quoteResponse"`
	UserPublicKey string         `json:"userPublicKey"`
	Payer         string         `json:"payer,omitempty"`
	FeeAccount    string         `json:"feeAccount,omitempty"`

	// InstructionFormat should be "json"; the default legacy format
	// returns compiled instructions this client does not assemble.
	InstructionFormat string `json:"instructionFormat,omitempty"`
}

type InstructionAccount struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// Instruction is one instruction from the swap-instructions endpoint.
// With instructionFormat=json it is an object; otherwise the API sends
// a base64 string (legacy compiled form), flagged via Legacy().
type Instruction struct {
	ProgramID string               `json:"programId"`
	Accounts  []InstructionAccount `json:"accounts"`
	Data      string               `json:"data"` // base64

	legacy bool
}

func (ix *Instruction) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		ix.legacy = true
		return nil
	}
	type plain Instruction
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*ix = Instruction(p)
	return nil
}

func (ix *Instruction) Legacy() bool { return ix.legacy }

type SwapInstructionsResponse struct {
	TokenLedgerInstruction      *Instruction  `json:"tokenLedgerInstruction,omitempty"`
	ComputeBudgetInstructions   []Instruction `json:"computeBudgetInstructions,omitempty"`
	SetupInstructions           []Instruction `json:"setupInstructions,omitempty"`
	SwapInstruction             *Instruction  `json:"swapInstruction,omitempty"`
	CleanupInstruction          *Instruction  `json:"cleanupInstruction,omitempty"`
	AddressLookupTableAddresses []string      `json:"addressLookupTableAddresses,omitempty"`
}

// Ordered flattens the response into execution order.
func (r *SwapInstructionsResponse) Ordered() []Instruction {
	var out []Instruction
	if r.TokenLedgerInstruction != nil {
		out = append(out, *r.TokenLedgerInstruction)
	}
	out = append(out, r.ComputeBudgetInstructions...)
	out = append(out, r.SetupInstructions...)
	if r.SwapInstruction != nil {
		out = append(out, *r.SwapInstruction)
	}
	if r.CleanupInstruction != nil {
		out = append(out, *r.CleanupInstruction)
	}
	return out
}

// SwapInstructions returns the raw instruction set for a quote instead
// of an assembled transaction.
func (c *Client) SwapInstructions(ctx context.Context, req SwapInstructionsRequest) (*SwapInstructionsResponse, error) {
	if req.QuoteResponse == nil {
		return nil, fmt.Errorf("quoteResponse is required")
	}
	if strings.TrimSpace(req.UserPublicKey) == "" {
		return nil, fmt.Errorf("userPublicKey is required")
	}
	var out SwapInstructionsResponse
	if err := c.postJSON(ctx, "/swap/v1/swap-instructions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
