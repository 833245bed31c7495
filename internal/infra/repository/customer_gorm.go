package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// idがあれば更新、無ければ新規作成
func (r *CustomerGormRepository) Save(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	var items []model.Customer

	if err := r.db.WithContext(ctx).Order("customer_id asc").Find(&items).Error; err != nil {
		return []model.Customer{}, err
	}
	return items, nil
}

func (r *CustomerGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// 顧客→カート→明細の順ではなく、明細→カート→顧客の順で明示的に消す
// DB側のcascade制約には頼らない
func (r *CustomerGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Customer
		if err := tx.Where("customer_id = ?", id).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		var cartIDs []int64
		if err := tx.Model(&model.Cart{}).
			Where("customer_id = ?", id).
			Pluck("id", &cartIDs).Error; err != nil {
			return err
		}

		if len(cartIDs) > 0 {
			if err := tx.Where("cart_id IN ?", cartIDs).Delete(&model.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cartIDs).Delete(&model.Cart{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Customer{}, id).Error
	})
}
