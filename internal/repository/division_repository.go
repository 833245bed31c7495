package repository

import (
	"context"

	"app/internal/domain/model"
)

// Divisionの永続化（参照データなので読み取り中心）
type DivisionRepository interface {
	FindByID(ctx context.Context, id int64) (model.Division, error)
	FindAll(ctx context.Context) ([]model.Division, error)
	Count(ctx context.Context) (int64, error)
	// シード専用
	Save(ctx context.Context, d model.Division) (model.Division, error)
}
