package core

import (
	"context"
)

// Authorization actor and permission an action is signed with
type Authorization struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// NewAuthorization actor@active
func NewAuthorization(actor string) Authorization {
	return Authorization{Actor: actor, Permission: PermissionActive}
}

func (a Authorization) String() string {
	return a.Actor + "@" + a.Permission
}

// Authorizer verifies that account authorized the current call with permission
type Authorizer interface {
	HasPermission(ctx context.Context, account, permission string) bool
}
