package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カートが空（または存在しない）のままcheckoutした
var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// checkout時に在庫が足りない。メッセージの文字列一致ではなく型で判別する。
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// カート追加で「既存数量＋追加数量」が在庫を超えた
type StockExceededError struct {
	ProductID   int64
	ProductName string
	InCart      int64
	Requested   int64
	Available   int64
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("cannot add %d of product %q: %d already in cart, only %d in stock",
		e.Requested, e.ProductName, e.InCart, e.Available)
}
