package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	// cart_idを付け替えて一括作成
	CreateBulk(ctx context.Context, cartID int64, items []model.CartItem) ([]model.CartItem, error)
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, id int64) (model.CartItem, error)
	FindAll(ctx context.Context) ([]model.CartItem, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
