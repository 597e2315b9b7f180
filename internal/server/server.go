package server

import (
	"app/internal/config"
	appmw "app/internal/middleware"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// echoを組み立てて起動する
func New(cfg config.Config, blacklist repository.TokenBlacklist, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger())
	//雑なリトライ連打の抑止
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(20)))

	RegisterRoutes(e, cfg, blacklist, h)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
