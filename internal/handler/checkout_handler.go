package handler

import (
	"net/http"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	// バリデーション失敗時のみ入る
	Fields map[string]string `json:"fields,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Fields: he.Fields})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/checkout のHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
	rv *validator.RequestValidator
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, rv *validator.RequestValidator) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, rv: rv}
}

// 外向きのキー名は既存フロントとの互換でcamelCase
type PurchaseCartPayload struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`
}

type PurchaseItemPayload struct {
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
	UnitPrice int64 `json:"unit_price" validate:"gte=0"`
}

type PurchaseRequest struct {
	Cart      PurchaseCartPayload   `json:"cart"`
	CartItems []PurchaseItemPayload `json:"cartItems" validate:"dive"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/checkout")
	g.POST("/purchase", h.purchase)
}

func (h *CheckoutHandler) purchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if fields := h.rv.Struct(req); fields != nil {
		return writeError(c, usecase.NewValidationError(fields))
	}

	items := make([]usecase.PurchaseItemInput, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		items = append(items, usecase.PurchaseItemInput{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PurchaseInput{
		Cart: usecase.PurchaseCartInput{
			ID:         req.Cart.ID,
			CustomerID: req.Cart.CustomerID,
		},
		CartItems: items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
