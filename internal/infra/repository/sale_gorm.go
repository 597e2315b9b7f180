package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Create(ctx context.Context, sale model.Sale) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return 0, err
	}
	return sale.ID, nil
}

func (r *SaleGormRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Sale, error) {
	var sales []model.Sale

	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id desc").
		Find(&sales).Error
	if err != nil {
		return []model.Sale{}, err
	}

	return sales, nil
}

type SaleItemGormRepository struct {
	db *gorm.DB
}

func NewSaleItemGormRepository(db *gorm.DB) *SaleItemGormRepository {
	return &SaleItemGormRepository{db: db}
}

func (r *SaleItemGormRepository) CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].SaleID = saleID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *SaleItemGormRepository) ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error) {
	var items []model.SaleItem

	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.SaleItem{}, err
	}

	return items, nil
}
