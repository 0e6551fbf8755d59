package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req["jsonrpc"])
		assert.Equal(t, "getHealth", req["method"])

		fmt.Fprint(w, `{"jsonrpc":"2.0","result":"ok","id":1}`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	var resp struct {
		Result string `json:"result"`
	}
	require.NoError(t, client.Call(context.Background(), "getHealth", nil, &resp))
	assert.Equal(t, "ok", resp.Result)
}

func TestCall_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"jsonrpc":"2.0","result":"ok","id":1}`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:      srv.URL,
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
	})

	var resp struct {
		Result string `json:"result"`
	}
	require.NoError(t, client.Call(context.Background(), "getHealth", nil, &resp))
	assert.Equal(t, int32(3), calls.Load())
}

func TestCall_MaxRetriesExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:      srv.URL,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	})

	var resp struct{}
	err := client.Call(context.Background(), "getHealth", nil, &resp)
	assert.ErrorContains(t, err, "max retries exceeded")
}

func TestGetAccountData(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","result":{"value":{"data":["%s","base64"],"lamports":1,"owner":"o"}},"id":1}`,
			base64.StdEncoding.EncodeToString(payload))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	data, err := client.GetAccountData(context.Background(), "some-pubkey", "")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestGetAccountData_MissingAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","result":{"value":null},"id":1}`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	data, err := client.GetAccountData(context.Background(), "some-pubkey", "confirmed")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGetAccountData_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","error":{"code":-32602,"message":"invalid pubkey"},"id":1}`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.GetAccountData(context.Background(), "bad", "confirmed")
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32602, rpcErr.Code)
}
