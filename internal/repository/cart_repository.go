package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// idがあれば更新、無ければ新規作成
	Save(ctx context.Context, cart model.Cart) (model.Cart, error)
	FindByID(ctx context.Context, id int64) (model.Cart, error)
	FindAll(ctx context.Context) ([]model.Cart, error)
	Count(ctx context.Context) (int64, error)
	// カート削除は明細も明示的に消す
	DeleteByID(ctx context.Context, id int64) error
}
