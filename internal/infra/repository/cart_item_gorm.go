package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// cart_idを付け替えて一括作成
func (r *CartItemGormRepository) CreateBulk(ctx context.Context, cartID int64, items []model.CartItem) ([]model.CartItem, error) {
	if len(items) == 0 {
		return []model.CartItem{}, nil
	}

	now := time.Now()
	rows := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		it.ID = 0
		it.CartID = cartID
		it.CreatedAt = now
		it.UpdatedAt = now
		rows = append(rows, it)
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return []model.CartItem{}, err
	}
	return rows, nil
}

func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, id int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemGormRepository) FindAll(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.CartItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
