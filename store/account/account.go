package account

import (
	"context"

	"tokenledger/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type accountStore struct {
	db *db.DB
}

// New new account store
func New(db *db.DB) core.AccountStore {
	return &accountStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Account{})
		if err := tx.AutoMigrate(core.Account{}).Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.Permission{})
		if err := tx.AutoMigrate(core.Permission{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *accountStore) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := s.db.View().Model(core.Account{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *accountStore) Create(ctx context.Context, account *core.Account, permissions ...*core.Permission) error {
	return s.db.Tx(func(tx *db.DB) error {
		if err := tx.Update().Create(account).Error; err != nil {
			return err
		}

		for _, p := range permissions {
			p.Account = account.Name
			if err := tx.Update().Create(p).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *accountStore) Find(ctx context.Context, name string) (*core.Account, error) {
	var account core.Account
	if err := s.db.View().Where("name = ?", name).First(&account).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Account{}, nil
		}

		return nil, err
	}

	return &account, nil
}

func (s *accountStore) List(ctx context.Context) ([]*core.Account, error) {
	var accounts []*core.Account
	if err := s.db.View().Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *accountStore) FindPermission(ctx context.Context, account, name string) (*core.Permission, error) {
	var permission core.Permission
	if err := s.db.View().Where("account = ? AND name = ?", account, name).First(&permission).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Permission{}, nil
		}

		return nil, err
	}

	return &permission, nil
}
