package repository

import (
	"app/internal/domain/model"
	"context"
)

type SaleRepository interface {
	Create(ctx context.Context, sale model.Sale) (int64, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]model.Sale, error)
}

type SaleItemRepository interface {
	CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error
	ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error)
}
