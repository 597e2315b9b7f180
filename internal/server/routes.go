package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// 各handlerをまとめて登録する
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, blacklist repository.TokenBlacklist, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg, blacklist)
	h.User.RegisterRoutes(e, cfg, blacklist)
	h.Product.RegisterRoutes(e, cfg, blacklist)
	h.Cart.RegisterRoutes(e, cfg, blacklist)
	h.Checkout.RegisterRoutes(e, cfg, blacklist)
}
