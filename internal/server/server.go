package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// ルート登録に必要なハンドラ一式
type Handlers struct {
	Checkout *handler.CheckoutHandler
	Customer *handler.CustomerHandler
	Cart     *handler.CartHandler
	Division *handler.DivisionHandler
}

// New はecho本体を組み立てる（CORSは指定オリジン1つだけ許可）
func New(feURL string, log *logrus.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())

	if feURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{feURL},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	//アクセスログ
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Info("request")
			return nil
		},
	}))

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, feURL string, log *logrus.Logger, h Handlers) error {
	e := New(feURL, log, h)
	return e.Start(addr)
}
