package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tokenledger/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var received core.Withdrawal
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "trace-1", r.Header.Get("X-Request-Id"))

		if r.URL.Path != "/contracts/eosio.token/transfer" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		require.Nil(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trace_id":"trace-1"}`))
	}))
	defer server.Close()

	s := New(Config{Endpoint: server.URL + "/"})
	w := &core.Withdrawal{
		TraceID:  "trace-1",
		Contract: "eosio.token",
		From:     "ledger",
		To:       "admin",
		Quantity: core.MustParseAsset("1.0000 EOS"),
		Memo:     core.WithdrawMemo,
	}

	require.Nil(t, s.Send(context.Background(), w))
	assert.Equal(t, "1.0000 EOS", received.Quantity.String())
	assert.Equal(t, "admin", received.To)
	assert.Equal(t, core.WithdrawMemo, received.Memo)

	w.Contract = "missing"
	assert.Error(t, s.Send(context.Background(), w))
}

func TestSendNotConfigured(t *testing.T) {
	err := New(Config{}).Send(context.Background(), &core.Withdrawal{})
	assert.EqualError(t, err, "withdraw endpoint not configured")
}
