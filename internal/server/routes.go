package server

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Checkout.RegisterRoutes(e)
	h.Customer.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Division.RegisterRoutes(e)
}
