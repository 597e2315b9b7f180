package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *InventoryRepoMock) {
	productRepo := new(ProductRepoMock)
	inventoryRepo := new(InventoryRepoMock)
	return usecase.NewProductUsecase(productRepo, inventoryRepo), productRepo, inventoryRepo
}

func TestProductUsecase_CreateProduct_SetsSeller(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.SellerID == 5 && p.Name == "coffee beans" && p.Price == 1000 && p.Stock == 10
	})).Return(model.Product{ID: 1, Name: "coffee beans", Price: 1000, Stock: 10, SellerID: 5}, nil)

	out, err := uc.CreateProduct(ctx, 5, usecase.CreateProductInput{
		Name:  "coffee beans",
		Price: 1000,
		Stock: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.SellerID)
}

func TestProductUsecase_CreateProduct_Validation(t *testing.T) {
	uc, _, _ := newProductUsecase()
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, 5, usecase.CreateProductInput{Name: "", Price: 100, Stock: 1})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.CreateProduct(ctx, 5, usecase.CreateProductInput{Name: "x", Price: -1, Stock: 1})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.CreateProduct(ctx, 5, usecase.CreateProductInput{Name: "x", Price: 100, Stock: -1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

// 在庫更新は差分で履歴が残る
func TestProductUsecase_UpdateStock_RecordsDelta(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, inventoryRepo := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "coffee beans", Stock: 10, SellerID: 5}, nil)
	inventoryRepo.On("SetStock", mock.Anything, int64(1), int64(4)).Return(nil)
	inventoryRepo.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(adj model.StockAdjustment) bool {
		return adj.ProductID == 1 && adj.UserID == 5 && adj.Delta == -6 && adj.Reason == "damaged"
	})).Return(nil)

	out, err := uc.UpdateStock(ctx, 5, 1, 4, "damaged")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)

	inventoryRepo.AssertExpectations(t)
}

// 他人の商品の在庫は変更できない
func TestProductUsecase_UpdateStock_Forbidden(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, inventoryRepo := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Stock: 10, SellerID: 5}, nil)

	_, err := uc.UpdateStock(ctx, 99, 1, 4, "")
	assertHTTPStatus(t, err, http.StatusForbidden)

	inventoryRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_UpdateStock_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.UpdateStock(ctx, 5, 9, 4, "")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestProductUsecase_DeleteProduct_Forbidden(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, SellerID: 5}, nil)

	err := uc.DeleteProduct(ctx, 99, 1)
	assertHTTPStatus(t, err, http.StatusForbidden)

	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUsecase_DeleteProduct_Owner(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, SellerID: 5}, nil)
	productRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := uc.DeleteProduct(ctx, 5, 1)
	assert.NoError(t, err)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(42)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(ctx, 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
