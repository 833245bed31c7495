package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CustomerUsecase は /api/customers のコレクション操作です。
type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	divisionRepo repo.DivisionRepository
}

func NewCustomerUsecase(
	customerRepo repo.CustomerRepository,
	divisionRepo repo.DivisionRepository,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		divisionRepo: divisionRepo,
	}
}

type CustomerInput struct {
	FirstName  string
	LastName   string
	Address    string
	PostalCode string
	Phone      string
	DivisionID int64
}

func (u *CustomerUsecase) List(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customerRepo.FindAll(ctx)
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Detail(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in CustomerInput) (model.Customer, error) {
	//Divisionは必須（存在しないdivision_idは弾く）
	if in.DivisionID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid division_id")
	}
	if _, err := u.divisionRepo.FindByID(ctx, in.DivisionID); err != nil {
		if err == repo.ErrNotFound {
			return model.Customer{}, NewHTTPError(http.StatusBadRequest, "division not found")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	c, err := u.customerRepo.Save(ctx, model.Customer{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Address:    strings.TrimSpace(in.Address),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Phone:      strings.TrimSpace(in.Phone),
		DivisionID: in.DivisionID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, customerID int64, in CustomerInput) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	existing, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.DivisionID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid division_id")
	}
	if _, err := u.divisionRepo.FindByID(ctx, in.DivisionID); err != nil {
		if err == repo.ErrNotFound {
			return model.Customer{}, NewHTTPError(http.StatusBadRequest, "division not found")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.FirstName = strings.TrimSpace(in.FirstName)
	existing.LastName = strings.TrimSpace(in.LastName)
	existing.Address = strings.TrimSpace(in.Address)
	existing.PostalCode = strings.TrimSpace(in.PostalCode)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.DivisionID = in.DivisionID
	existing.UpdatedAt = time.Now()

	saved, err := u.customerRepo.Save(ctx, existing)
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return saved, nil
}

// 顧客削除。所有するカートと明細はrepo側で一緒に消える
func (u *CustomerUsecase) Delete(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.customerRepo.DeleteByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
