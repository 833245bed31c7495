package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type CustomerRepository interface {
	Save(ctx context.Context, c model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	Count(ctx context.Context) (int64, error)
	// 顧客削除は所有するカート・明細も明示的に消す
	DeleteByID(ctx context.Context, id int64) error
}
