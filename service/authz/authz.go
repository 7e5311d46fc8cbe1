package authz

import (
	"context"

	"tokenledger/core"
	"tokenledger/pkg/security"

	"github.com/fox-one/pkg/logger"
)

type key int

const credentialsKey key = iota

// Credential key presented by the caller for account@permission
type Credential struct {
	Account    string
	Permission string
	Key        string
}

// WithCredential attach credential to ctx
func WithCredential(ctx context.Context, c Credential) context.Context {
	credentials := append(CredentialsFrom(ctx), c)
	return context.WithValue(ctx, credentialsKey, credentials)
}

// CredentialsFrom credentials attached to ctx
func CredentialsFrom(ctx context.Context) []Credential {
	credentials, _ := ctx.Value(credentialsKey).([]Credential)
	return append([]Credential(nil), credentials...)
}

type authorizer struct {
	accounts core.AccountStore
}

// New authorizer verifying ctx credentials against the account store
func New(accounts core.AccountStore) core.Authorizer {
	return &authorizer{accounts: accounts}
}

func (a *authorizer) HasPermission(ctx context.Context, account, permission string) bool {
	log := logger.FromContext(ctx).WithField("account", account)

	for _, c := range CredentialsFrom(ctx) {
		if c.Account != account {
			continue
		}

		if c.Permission != permission && c.Permission != core.PermissionOwner {
			continue
		}

		p, err := a.accounts.FindPermission(ctx, c.Account, c.Permission)
		if err != nil {
			log.WithError(err).Errorln("accounts.FindPermission")
			continue
		}

		if security.VerifyKey(c.Key, p.KeyHash) {
			return true
		}
	}

	return false
}

type local struct {
	actor string
}

// Local authorizer trusting the operator of the local process to act as actor
func Local(actor string) core.Authorizer {
	return &local{actor: actor}
}

func (l *local) HasPermission(ctx context.Context, account, permission string) bool {
	return l.actor != "" && account == l.actor
}
