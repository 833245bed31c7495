package repository

import "context"

// 適用済みシードの記録
type SeedRepository interface {
	IsApplied(ctx context.Context, version string) (bool, error)
	MarkApplied(ctx context.Context, version string) error
}
