package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type SeedGormRepository struct {
	db *gorm.DB
}

// DI
func NewSeedGormRepository(db *gorm.DB) *SeedGormRepository {
	return &SeedGormRepository{db: db}
}

func (r *SeedGormRepository) IsApplied(ctx context.Context, version string) (bool, error) {
	var sv model.SeedVersion

	err := r.db.WithContext(ctx).Where("version = ?", version).First(&sv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SeedGormRepository) MarkApplied(ctx context.Context, version string) error {
	sv := model.SeedVersion{
		Version:   version,
		AppliedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&sv).Error
}
