package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users         repo.UserRepository
	carts         repo.CartRepository
	cartItems     repo.CartItemRepository
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	purchases     repo.PurchaseRepository
	purchaseItems repo.PurchaseItemRepository
	sales         repo.SaleRepository
	saleItems     repo.SaleItemRepository
}

func (r *txReposGorm) Users() repo.UserRepository                 { return r.users }
func (r *txReposGorm) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository         { return r.cartItems }
func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository        { return r.inventory }
func (r *txReposGorm) Purchases() repo.PurchaseRepository         { return r.purchases }
func (r *txReposGorm) PurchaseItems() repo.PurchaseItemRepository { return r.purchaseItems }
func (r *txReposGorm) Sales() repo.SaleRepository                 { return r.sales }
func (r *txReposGorm) SaleItems() repo.SaleItemRepository         { return r.saleItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:         NewUserGormRepository(tx),
			carts:         NewCartGormRepository(tx),
			cartItems:     NewCartItemGormRepository(tx),
			products:      NewProductGormRepository(tx),
			inventory:     NewInventoryGormRepository(tx),
			purchases:     NewPurchaseGormRepository(tx),
			purchaseItems: NewPurchaseItemGormRepository(tx),
			sales:         NewSaleGormRepository(tx),
			saleItems:     NewSaleItemGormRepository(tx),
		}
		return fn(r)
	})
}
