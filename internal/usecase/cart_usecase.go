package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/carts と /api/cart-items のコレクション操作です。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
	}
}

// カート詳細は明細込みで返す
type CartDetailOutput struct {
	Cart  model.Cart       `json:"cart"`
	Items []model.CartItem `json:"items"`
}

func (u *CartUsecase) List(ctx context.Context) ([]model.Cart, error) {
	items, err := u.cartRepo.FindAll(ctx)
	if err != nil {
		return []model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CartUsecase) Detail(ctx context.Context, cartID int64) (CartDetailOutput, error) {
	if cartID <= 0 {
		return CartDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartDetailOutput{Cart: cart, Items: items}, nil
}

func (u *CartUsecase) ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	if cartID <= 0 {
		return []model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return []model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return []model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CartUsecase) Delete(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartRepo.DeleteByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CartUsecase) ItemDetail(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	if cartItemID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *CartUsecase) DeleteItem(ctx context.Context, cartItemID int64) error {
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartItemRepo.DeleteByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
