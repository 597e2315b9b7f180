package repository

import (
	"app/internal/domain/model"
	"context"
)

type PurchaseRepository interface {
	// totalAmount=0のプレースホルダで先に作り、IDを得る
	Create(ctx context.Context, purchase model.Purchase) (int64, error)
	UpdateTotal(ctx context.Context, purchaseID int64, totalAmount int64) error
	ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error)
}

type PurchaseItemRepository interface {
	CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error
	ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error)
}
