package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seed"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type uuidTrackingNumberGenerator struct{}

func (g *uuidTrackingNumberGenerator) NewTrackingNumber() string {
	return uuid.NewString()
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	//.envは無ければ無いで良い（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Division{},
		&model.Customer{},
		&model.Cart{},
		&model.CartItem{},
		&model.SeedVersion{},
	); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	//Repository（GORM実装）生成
	divisionRepo := infraRepo.NewDivisionGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//シーダーはリッスン前に1回だけ。Division欠落は起動中断
	loader := seed.NewDataLoader(txManager, log)
	if err := loader.Run(context.Background()); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	//Usecase生成
	idGen := &uuidTrackingNumberGenerator{}
	checkoutUC := usecase.NewCheckoutUsecase(txManager, idGen)
	customerUC := usecase.NewCustomerUsecase(customerRepo, divisionRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo)
	divisionUC := usecase.NewDivisionUsecase(divisionRepo)

	//Handler生成
	rv := validator.New()
	handlers := server.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutUC, rv),
		Customer: handler.NewCustomerHandler(customerUC, rv),
		Cart:     handler.NewCartHandler(cartUC),
		Division: handler.NewDivisionHandler(divisionUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.WithField("addr", addr).Info("starting server")
	if err := server.Start(addr, cfg.FEURL, log, handlers); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
