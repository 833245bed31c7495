package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/divisions のHTTP（参照データ、読み取りのみ）
type DivisionHandler struct {
	uc *usecase.DivisionUsecase
}

// DI
func NewDivisionHandler(uc *usecase.DivisionUsecase) *DivisionHandler {
	return &DivisionHandler{uc: uc}
}

func (h *DivisionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/divisions")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
}

func (h *DivisionHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DivisionHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
