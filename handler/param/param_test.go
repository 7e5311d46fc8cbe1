package param

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tokenledger/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twitchtv/twirp"
)

func TestBindingBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"to":"bob","quantity":"1.0000 TOK","memo":"m"}`))

	var req core.IssueRequest
	require.Nil(t, Binding(r, &req))
	assert.Equal(t, "bob", req.To)
	assert.Equal(t, "1.0000 TOK", req.Quantity.String())
	assert.Equal(t, "m", req.Memo)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"to":"bob","quantity":"1.0000TOK"}`))
	assert.ErrorIs(t, Binding(r, &core.IssueRequest{}), core.ErrMalformedAsset)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":"1.0000 TOK"}`))
	err := Binding(r, &core.IssueRequest{})
	require.NotNil(t, err)
	twerr, ok := err.(twirp.Error)
	require.True(t, ok)
	assert.Equal(t, twirp.InvalidArgument, twerr.Code())

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"to":"Bob","quantity":"1.0000 TOK"}`))
	assert.ErrorIs(t, Binding(r, &core.IssueRequest{}), core.ErrInvalidAccount)
}

func TestBindingQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?from=10&limit=20&unknown=1", nil)

	var params struct {
		From  int64 `json:"from"`
		Limit int   `json:"limit"`
	}
	require.Nil(t, Binding(r, &params))
	assert.EqualValues(t, 10, params.From)
	assert.Equal(t, 20, params.Limit)

	r = httptest.NewRequest(http.MethodGet, "/?limit=abc", nil)
	assert.Error(t, Binding(r, &params))
}
