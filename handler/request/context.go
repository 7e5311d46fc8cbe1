package request

import (
	"context"

	"tokenledger/core"
)

type key int

const (
	authorizationKey key = iota
)

type ContextX struct {
	context.Context
}

// NewContext context extension
func NewContext(ctx context.Context) ContextX {
	return ContextX{
		Context: ctx,
	}
}

// WithAuthorization context with the authorization claimed by the caller
func (c ContextX) WithAuthorization(auth core.Authorization) context.Context {
	return context.WithValue(c, authorizationKey, auth)
}

// GetAuthorization get authorization from context
func (c ContextX) GetAuthorization() (core.Authorization, bool) {
	auth, ok := c.Value(authorizationKey).(core.Authorization)
	return auth, ok
}
