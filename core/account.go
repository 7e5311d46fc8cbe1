package core

import (
	"context"
	"time"
)

const (
	// PermissionOwner owner permission, satisfies any other permission
	PermissionOwner = "owner"
	// PermissionActive active permission, required by every action
	PermissionActive = "active"

	// MaxAccountLength max length of an account name
	MaxAccountLength = 12
)

// Account known account
type Account struct {
	ID        int64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Name      string    `sql:"size:12;unique_index:idx_accounts_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Permission named key of an account
type Permission struct {
	ID        int64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Account   string    `sql:"size:12;unique_index:idx_permissions_account_name" json:"account"`
	Name      string    `sql:"size:12;unique_index:idx_permissions_account_name" json:"name"`
	KeyHash   string    `sql:"size:64" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidAccount 1-12 chars of a-z, 1-5 and '.'
func IsValidAccount(name string) bool {
	if len(name) == 0 || len(name) > MaxAccountLength {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z') && !(c >= '1' && c <= '5') && c != '.' {
			return false
		}
	}

	return true
}

// AccountRegistry answers whether an account is known
type AccountRegistry interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// AccountStore account store interface
type AccountStore interface {
	AccountRegistry
	Create(ctx context.Context, account *Account, permissions ...*Permission) error
	Find(ctx context.Context, name string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	FindPermission(ctx context.Context, account, name string) (*Permission, error)
}
