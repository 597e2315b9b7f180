package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) Create(ctx context.Context, purchase model.Purchase) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&purchase).Error; err != nil {
		return 0, err
	}
	return purchase.ID, nil
}

func (r *PurchaseGormRepository) UpdateTotal(ctx context.Context, purchaseID int64, totalAmount int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("id = ?", purchaseID).
		Update("total_amount", totalAmount)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PurchaseGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&purchases).Error
	if err != nil {
		return []model.Purchase{}, err
	}

	return purchases, nil
}

type PurchaseItemGormRepository struct {
	db *gorm.DB
}

func NewPurchaseItemGormRepository(db *gorm.DB) *PurchaseItemGormRepository {
	return &PurchaseItemGormRepository{db: db}
}

func (r *PurchaseItemGormRepository) CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].PurchaseID = purchaseID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PurchaseItemGormRepository) ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem

	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.PurchaseItem{}, err
	}

	return items, nil
}
