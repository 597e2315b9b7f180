package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) CreateAdjustment(ctx context.Context, adjustment model.StockAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context, cart model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64) error {
	args := m.Called(ctx, cartID, productID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error {
	args := m.Called(ctx, cartID, productID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type PurchaseRepoMock struct{ mock.Mock }

func (m *PurchaseRepoMock) Create(ctx context.Context, purchase model.Purchase) (int64, error) {
	args := m.Called(ctx, purchase)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PurchaseRepoMock) UpdateTotal(ctx context.Context, purchaseID int64, totalAmount int64) error {
	args := m.Called(ctx, purchaseID, totalAmount)
	return args.Error(0)
}

func (m *PurchaseRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Purchase)
	return items, args.Error(1)
}

type PurchaseItemRepoMock struct{ mock.Mock }

func (m *PurchaseItemRepoMock) CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	args := m.Called(ctx, purchaseID, items)
	return args.Error(0)
}

func (m *PurchaseItemRepoMock) ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	args := m.Called(ctx, purchaseID)
	items, _ := args.Get(0).([]model.PurchaseItem)
	return items, args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) Create(ctx context.Context, sale model.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SaleRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Sale, error) {
	args := m.Called(ctx, sellerID)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

type SaleItemRepoMock struct{ mock.Mock }

func (m *SaleItemRepoMock) CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error {
	args := m.Called(ctx, saleID, items)
	return args.Error(0)
}

func (m *SaleItemRepoMock) ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error) {
	args := m.Called(ctx, saleID)
	items, _ := args.Get(0).([]model.SaleItem)
	return items, args.Error(1)
}

type BlacklistMock struct{ mock.Mock }

func (m *BlacklistMock) Add(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *BlacklistMock) Has(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// =====================
// トランザクションのフェイク
// =====================

// WithinTxをそのまま実行するだけ。rollback検証はしない。
type fakeTxRepos struct {
	users         *UserRepoMock
	carts         *CartRepoMock
	cartItems     *CartItemRepoMock
	products      *ProductRepoMock
	inventory     *InventoryRepoMock
	purchases     *PurchaseRepoMock
	purchaseItems *PurchaseItemRepoMock
	sales         *SaleRepoMock
	saleItems     *SaleItemRepoMock
}

func newFakeTxRepos() *fakeTxRepos {
	return &fakeTxRepos{
		users:         new(UserRepoMock),
		carts:         new(CartRepoMock),
		cartItems:     new(CartItemRepoMock),
		products:      new(ProductRepoMock),
		inventory:     new(InventoryRepoMock),
		purchases:     new(PurchaseRepoMock),
		purchaseItems: new(PurchaseItemRepoMock),
		sales:         new(SaleRepoMock),
		saleItems:     new(SaleItemRepoMock),
	}
}

func (f *fakeTxRepos) Users() repo.UserRepository                 { return f.users }
func (f *fakeTxRepos) Carts() repo.CartRepository                 { return f.carts }
func (f *fakeTxRepos) CartItems() repo.CartItemRepository         { return f.cartItems }
func (f *fakeTxRepos) Products() repo.ProductRepository           { return f.products }
func (f *fakeTxRepos) Inventory() repo.InventoryRepository        { return f.inventory }
func (f *fakeTxRepos) Purchases() repo.PurchaseRepository         { return f.purchases }
func (f *fakeTxRepos) PurchaseItems() repo.PurchaseItemRepository { return f.purchaseItems }
func (f *fakeTxRepos) Sales() repo.SaleRepository                 { return f.sales }
func (f *fakeTxRepos) SaleItems() repo.SaleItemRepository         { return f.saleItems }

type fakeTxManager struct {
	repos *fakeTxRepos
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// assertヘルパー
// =====================

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
	}
}
