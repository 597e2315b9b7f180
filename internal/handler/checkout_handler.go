package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// checkoutと購入/販売履歴のHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	historyUC  *usecase.HistoryUsecase
}

// DI
func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, historyUC *usecase.HistoryUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, historyUC: historyUC}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, blacklist repository.TokenBlacklist) {
	auth := middleware.AuthJWT(cfg, blacklist)

	e.POST("/checkout/:userId", h.checkout, auth)
	e.GET("/users/:id/purchases", h.purchases, auth)
	e.GET("/users/:id/sales", h.sales, auth)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	//自分のカートしかcheckoutできない
	if pathUserID != userID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	out, err := h.checkoutUC.Checkout(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CheckoutHandler) purchases(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	pathID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if pathID != userID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	out, err := h.historyUC.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) sales(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	pathID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if pathID != userID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	out, err := h.historyUC.ListSales(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
