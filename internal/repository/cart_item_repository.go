package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
	// 同一商品はプラス
	UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
	// checkout後のカート空化
	DeleteByCartID(ctx context.Context, cartID int64) error
}
