package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// DivisionUsecase は /api/divisions（参照データ、読み取りのみ）です。
type DivisionUsecase struct {
	divisionRepo repo.DivisionRepository
}

func NewDivisionUsecase(divisionRepo repo.DivisionRepository) *DivisionUsecase {
	return &DivisionUsecase{divisionRepo: divisionRepo}
}

func (u *DivisionUsecase) List(ctx context.Context) ([]model.Division, error) {
	items, err := u.divisionRepo.FindAll(ctx)
	if err != nil {
		return []model.Division{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *DivisionUsecase) Detail(ctx context.Context, divisionID int64) (model.Division, error) {
	if divisionID <= 0 {
		return model.Division{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	d, err := u.divisionRepo.FindByID(ctx, divisionID)
	if err == repo.ErrNotFound {
		return model.Division{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Division{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return d, nil
}
