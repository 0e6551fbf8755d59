package jupiter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		RequestsPerSecond: 1000, // no throttling in tests
	})
}

func TestQuote(t *testing.T) {
	var gotQuery map[string]string
	var gotAPIKey string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/swap/v1/quote", r.URL.Path)

		gotAPIKey = r.Header.Get("x-api-key")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		json.NewEncoder(w).Encode(QuoteResponse{
			InputMint:   "So11111111111111111111111111111111111111112",
			OutputMint:  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			InAmount:    "50000000",
			OutAmount:   "7000000",
			SwapMode:    "ExactIn",
			SlippageBps: 50,
			RoutePlan:   []RoutePlanStep{{SwapInfo: SwapInfo{AmmKey: "amm", Label: "Orca"}}},
		})
	}))

	slippage := uint16(50)
	quote, err := client.Quote(context.Background(), QuoteRequest{
		InputMint:   "So11111111111111111111111111111111111111112",
		OutputMint:  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Amount:      50000000,
		SlippageBps: &slippage,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "50000000", gotQuery["amount"])
	assert.Equal(t, "50", gotQuery["slippageBps"])
	assert.Equal(t, "7000000", quote.OutAmount)
	assert.Len(t, quote.RoutePlan, 1)
}

func TestQuote_ValidatesInput(t *testing.T) {
	client := NewClient(ClientConfig{RequestsPerSecond: 1000})

	_, err := client.Quote(context.Background(), QuoteRequest{OutputMint: "x", Amount: 1})
	assert.ErrorContains(t, err, "inputMint")

	_, err = client.Quote(context.Background(), QuoteRequest{InputMint: "x", OutputMint: "y"})
	assert.ErrorContains(t, err, "amount")
}

func TestQuote_HTTPError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Route not found"}`, http.StatusBadRequest)
	}))

	slippage := uint16(50)
	_, err := client.Quote(context.Background(), QuoteRequest{
		InputMint: "a", OutputMint: "b", Amount: 1, SlippageBps: &slippage,
	})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Error(), "Route not found")
}

func TestQuote_ParseError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := client.Quote(context.Background(), QuoteRequest{InputMint: "a", OutputMint: "b", Amount: 1})

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "/swap/v1/quote", parseErr.Path)
}

func TestSwap(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/swap/v1/swap", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("content-type"))

		var req SwapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-pubkey", req.UserPublicKey)
		assert.Equal(t, "7000000", req.QuoteResponse.OutAmount)

		json.NewEncoder(w).Encode(SwapResponse{
			SwapTransaction:      "dHg=",
			LastValidBlockHeight: 123,
		})
	}))

	resp, err := client.Swap(context.Background(), SwapRequest{
		QuoteResponse: &QuoteResponse{OutAmount: "7000000"},
		UserPublicKey: "user-pubkey",
	})
	require.NoError(t, err)
	assert.Equal(t, "dHg=", resp.SwapTransaction)
	assert.Equal(t, uint64(123), resp.LastValidBlockHeight)
}

func TestInstruction_UnmarshalJSON(t *testing.T) {
	var resp SwapInstructionsResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"computeBudgetInstructions": [
			{"programId": "ComputeBudget111111111111111111111111111111", "accounts": [], "data": "AwQ="}
		],
		"swapInstruction": {
			"programId": "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4",
			"accounts": [{"pubkey": "So11111111111111111111111111111111111111112", "isSigner": true, "isWritable": false}],
			"data": "AQI="
		},
		"addressLookupTableAddresses": ["8ahLq1YQzbwZRcHsmRTBNSbZM9Jn9DVZ6UT4Pk5cGzvp"]
	}`), &resp))

	ordered := resp.Ordered()
	require.Len(t, ordered, 2)
	assert.False(t, ordered[0].Legacy())
	assert.Equal(t, "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4", ordered[1].ProgramID)
	require.Len(t, ordered[1].Accounts, 1)
	assert.True(t, ordered[1].Accounts[0].IsSigner)
}

func TestInstruction_UnmarshalJSON_Legacy(t *testing.T) {
	var resp SwapInstructionsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"swapInstruction": "AQIDBA=="}`), &resp))

	require.NotNil(t, resp.SwapInstruction)
	assert.True(t, resp.SwapInstruction.Legacy())
}

func TestCreateTriggerOrder(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/trigger/v1/createOrder", r.URL.Path)

		var req CreateTriggerOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "30000000", req.Params.MakingAmount)
		assert.Equal(t, "5000000", req.Params.TakingAmount)

		json.NewEncoder(w).Encode(CreateOrderResponse{
			Transaction: "dHg=",
			RequestID:   "req-1",
			Order:       "order-pubkey",
		})
	}))

	resp, err := client.CreateTriggerOrder(context.Background(), CreateTriggerOrderRequest{
		InputMint:  "a",
		OutputMint: "b",
		Maker:      "maker",
		Payer:      "maker",
		Params:     TriggerOrderParams{MakingAmount: "30000000", TakingAmount: "5000000"},
	})
	require.NoError(t, err)
	assert.False(t, resp.Failed())
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestCreateOrderResponse_Failed(t *testing.T) {
	rejected := &CreateOrderResponse{Error: "order size must be at least 5 USDC", Code: 400}
	assert.True(t, rejected.Failed())
	assert.Equal(t, "order size must be at least 5 USDC", rejected.FailureReason())

	ok := &CreateOrderResponse{Transaction: "dHg="}
	assert.False(t, ok.Failed())
}

func TestExecuteResponse_Failed(t *testing.T) {
	assert.False(t, (&ExecuteResponse{Status: "Success", Signature: "sig"}).Failed())
	assert.True(t, (&ExecuteResponse{Status: "Failed", Error: "insufficient funds"}).Failed())
	assert.Equal(t, "insufficient funds", (&ExecuteResponse{Status: "Failed", Error: "insufficient funds"}).FailureReason())
	assert.Equal(t, "status Failed", (&ExecuteResponse{Status: "Failed"}).FailureReason())
}

func TestUltraOrder_ReferralFeeFloor(t *testing.T) {
	var gotFee string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ultra/v1/order", r.URL.Path)
		gotFee = r.URL.Query().Get("referralFee")
		json.NewEncoder(w).Encode(UltraOrderResponse{RequestID: "req-1", Transaction: "dHg="})
	}))

	fee := uint16(10) // below the 50 bps floor
	_, err := client.UltraOrder(context.Background(), UltraOrderRequest{
		InputMint:       "a",
		OutputMint:      "b",
		Amount:          10000000,
		Taker:           "taker",
		ReferralAccount: "ref-account",
		ReferralFeeBps:  &fee,
	})
	require.NoError(t, err)
	assert.Equal(t, "50", gotFee)
}
