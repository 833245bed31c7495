package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DivisionGormRepository struct {
	db *gorm.DB
}

// DI
func NewDivisionGormRepository(db *gorm.DB) *DivisionGormRepository {
	return &DivisionGormRepository{db: db}
}

func (r *DivisionGormRepository) FindByID(ctx context.Context, id int64) (model.Division, error) {
	var d model.Division

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Division{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Division{}, err
	}
	return d, nil
}

func (r *DivisionGormRepository) FindAll(ctx context.Context) ([]model.Division, error) {
	var items []model.Division

	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Division{}, err
	}
	return items, nil
}

func (r *DivisionGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Division{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// シード用。idを指定して入れるので既存行には触らない
func (r *DivisionGormRepository) Save(ctx context.Context, d model.Division) (model.Division, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&d).Error
	if err != nil {
		return model.Division{}, err
	}
	return d, nil
}
