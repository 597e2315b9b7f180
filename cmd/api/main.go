package main

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/blacklist"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/migrations"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	//.envはローカル開発用（本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Info("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	//DB接続
	gormDB, sqlDB, err := db.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("db connect failed")
	}
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	purchaseItemRepo := infraRepo.NewPurchaseItemGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	saleItemRepo := infraRepo.NewSaleItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//logout済みトークンの置き場（プロセス内）
	tokenBlacklist := blacklist.NewMemory()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, txManager, userRepo, tokenBlacklist)
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	historyUC := usecase.NewHistoryUsecase(purchaseRepo, purchaseItemRepo, saleRepo, saleItemRepo)

	//Handler生成
	h := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		User:     handler.NewUserHandler(userUC, authUC),
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC, historyUC),
	}

	//Server起動
	e := server.New(cfg, tokenBlacklist, h)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logrus.WithField("addr", addr).Info("starting server")
	if err := server.Start(e, addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
