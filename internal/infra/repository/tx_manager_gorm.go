package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	divisions repo.DivisionRepository
	customers repo.CustomerRepository
	carts     repo.CartRepository
	cartItems repo.CartItemRepository
	seeds     repo.SeedRepository
}

func (r *txReposGorm) Divisions() repo.DivisionRepository { return r.divisions }
func (r *txReposGorm) Customers() repo.CustomerRepository { return r.customers }
func (r *txReposGorm) Carts() repo.CartRepository         { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *txReposGorm) Seeds() repo.SeedRepository         { return r.seeds }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			divisions: NewDivisionGormRepository(tx),
			customers: NewCustomerGormRepository(tx),
			carts:     NewCartGormRepository(tx),
			cartItems: NewCartItemGormRepository(tx),
			seeds:     NewSeedGormRepository(tx),
		}
		return fn(r)
	})
}
