package jupiter

type QuoteRequest struct {
	InputMint  string
	OutputMint string
	Amount     uint64

	SlippageBps *uint16
	SwapMode    string // ExactIn | ExactOut

	Dexes        []string
	ExcludeDexes []string

	RestrictIntermediateTokens *bool
	OnlyDirectRoutes           *bool
	AsLegacyTransaction        *bool

	PlatformFeeBps *uint16
	MaxAccounts    *uint64
}

// QuoteResponse is passed back verbatim in swap requests, so it keeps
// every field the API returns.
type QuoteResponse struct {
	InputMint            string          `json:"inputMint"`
	OutputMint           string          `json:"outputMint"`
	InAmount             string          `json:"inAmount"`
	OutAmount            string          `json:"outAmount"`
	OtherAmountThreshold string          `json:"otherAmountThreshold"`
	SwapMode             string          `json:"swapMode"`
	SlippageBps          uint16          `json:"slippageBps"`
	PlatformFee          *PlatformFee    `json:"platformFee,omitempty"`
	PriceImpactPct       string          `json:"priceImpactPct"`
	RoutePlan            []RoutePlanStep `json:"routePlan"`

	ContextSlot uint64  `json:"contextSlot,omitempty"`
	TimeTaken   float64 `json:"timeTaken,omitempty"`
}

type PlatformFee struct {
	Amount string `json:"amount,omitempty"`
	FeeBps uint16 `json:"feeBps,omitempty"`
}

type RoutePlanStep struct {
	SwapInfo SwapInfo `json:"swapInfo"`
	Percent  *uint8   `json:"percent,omitempty"`
	Bps      uint16   `json:"bps,omitempty"`
}

type SwapInfo struct {
	AmmKey     string `json:"ammKey"`
	Label      string `json:"label,omitempty"`
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`

	FeeAmount *string `json:"feeAmount,omitempty"`
	FeeMint   *string `json:"feeMint,omitempty"`
}

// ExecuteRequest submits a signed transaction back to the API. The same
// shape is used by the Ultra, Trigger and Recurring execute endpoints.
type ExecuteRequest struct {
	SignedTransaction string `json:"signedTransaction"`
	RequestID         string `json:"requestId"`
}

type ExecuteResponse struct {
	Status    string `json:"status,omitempty"`
	Signature string `json:"signature,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Order     string `json:"order,omitempty"`

	Code  int    `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
	Cause string `json:"cause,omitempty"`
}

// Failed reports whether the API accepted the transaction. Execute
// endpoints return 200 with a status/error body on rejection.
func (r *ExecuteResponse) Failed() bool {
	return r.Error != "" || (r.Status != "" && r.Status != "Success")
}

// FailureReason returns the most specific error detail available.
func (r *ExecuteResponse) FailureReason() string {
	switch {
	case r.Cause != "":
		return r.Cause
	case r.Error != "":
		return r.Error
	default:
		return "status " + r.Status
	}
}

// CreateOrderResponse is the shared shape of the Trigger and Recurring
// createOrder endpoints: an unsigned base64 transaction plus a request
// id, or an error payload when the order is rejected (for example below
// the minimum order size).
type CreateOrderResponse struct {
	Transaction string `json:"transaction,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
	Order       string `json:"order,omitempty"`

	Code  int    `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
	Cause string `json:"cause,omitempty"`
}

// Failed reports whether order creation was rejected: no transaction
// to sign means there is nothing to execute.
func (r *CreateOrderResponse) Failed() bool {
	return r.Transaction == ""
}

// FailureReason returns the error detail from a rejected order.
func (r *CreateOrderResponse) FailureReason() string {
	switch {
	case r.Cause != "":
		return r.Cause
	case r.Error != "":
		return r.Error
	default:
		return "no transaction returned"
	}
}
