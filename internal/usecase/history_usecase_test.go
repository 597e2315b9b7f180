package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHistoryUsecase() (*usecase.HistoryUsecase, *PurchaseRepoMock, *PurchaseItemRepoMock, *SaleRepoMock, *SaleItemRepoMock) {
	purchaseRepo := new(PurchaseRepoMock)
	purchaseItemRepo := new(PurchaseItemRepoMock)
	saleRepo := new(SaleRepoMock)
	saleItemRepo := new(SaleItemRepoMock)
	uc := usecase.NewHistoryUsecase(purchaseRepo, purchaseItemRepo, saleRepo, saleItemRepo)
	return uc, purchaseRepo, purchaseItemRepo, saleRepo, saleItemRepo
}

func TestHistoryUsecase_ListPurchases(t *testing.T) {
	ctx := context.Background()
	uc, purchaseRepo, purchaseItemRepo, _, _ := newHistoryUsecase()

	now := time.Now()
	purchaseRepo.On("ListByUserID", mock.Anything, int64(1)).
		Return([]model.Purchase{{ID: 100, UserID: 1, TotalAmount: 2600, PurchaseDate: now}}, nil)
	purchaseItemRepo.On("ListByPurchaseID", mock.Anything, int64(100)).
		Return([]model.PurchaseItem{
			{PurchaseID: 100, ProductName: "coffee beans", ProductPrice: 1000, Quantity: 2, Subtotal: 2000},
			{PurchaseID: 100, ProductName: "mug", ProductPrice: 600, Quantity: 1, Subtotal: 600},
		}, nil)

	out, err := uc.ListPurchases(ctx, 1)
	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, int64(2600), out[0].TotalAmount)
		assert.Len(t, out[0].Items, 2)
	}
}

func TestHistoryUsecase_ListPurchases_Empty(t *testing.T) {
	ctx := context.Background()
	uc, purchaseRepo, _, _, _ := newHistoryUsecase()

	purchaseRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Purchase{}, nil)

	out, err := uc.ListPurchases(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestHistoryUsecase_ListSales(t *testing.T) {
	ctx := context.Background()
	uc, _, _, saleRepo, saleItemRepo := newHistoryUsecase()

	now := time.Now()
	saleRepo.On("ListBySellerID", mock.Anything, int64(5)).
		Return([]model.Sale{{ID: 200, SellerID: 5, TotalAmount: 2000, SaleDate: now}}, nil)
	saleItemRepo.On("ListBySaleID", mock.Anything, int64(200)).
		Return([]model.SaleItem{
			{SaleID: 200, ProductName: "coffee beans", ProductPrice: 1000, Quantity: 2, Subtotal: 2000},
		}, nil)

	out, err := uc.ListSales(ctx, 5)
	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, int64(5), out[0].SellerID)
		assert.Equal(t, int64(2000), out[0].TotalAmount)
		assert.Len(t, out[0].Items, 1)
	}
}

func TestHistoryUsecase_ListSales_Unauthorized(t *testing.T) {
	uc, _, _, _, _ := newHistoryUsecase()

	_, err := uc.ListSales(context.Background(), 0)
	assertHTTPStatus(t, err, 401)
}
