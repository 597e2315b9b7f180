package usecase

import (
	repo "app/internal/repository"
	"context"
	"net/http"
)

// CartUsecase はカート操作の業務ロジックです。
// カートのPKは所有者のuser_idなので、cartID == userID。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	UserID int64              `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
	Total  int64              `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// 減算の結果。0以下になって行ごと消えたらDeleted=true。
type DecreaseResult struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	Deleted   bool  `json:"deleted"`
}

// GetCart はカートと明細（商品名・現在価格つき）を返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.UserID)
}

// AddItem はカートに追加（同一商品は数量加算）。
// 既存数量＋追加数量が在庫を超える場合はStockExceededError。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartInput) (CartItemResponse, error) {
	if userID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//既存数量を調べる
	var existingQty int64 = 0
	existing, err := u.cartItemRepo.FindByCartAndProduct(ctx, cart.UserID, in.ProductID)
	if err == nil {
		existingQty = existing.Quantity
	} else if err != repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	newQty := existingQty + in.Quantity
	if newQty > p.Stock {
		return CartItemResponse{}, &StockExceededError{
			ProductID:   p.ID,
			ProductName: p.Name,
			InCart:      existingQty,
			Requested:   in.Quantity,
			Available:   p.Stock,
		}
	}

	if err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cart.UserID, in.ProductID, in.Quantity); err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartItemResponse{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  newQty,
	}, nil
}

// DecreaseItem は数量を減らす。0以下になったら行を削除してDeletedを報告する。
func (u *CartUsecase) DecreaseItem(ctx context.Context, userID int64, productID int64, amount int64) (DecreaseResult, error) {
	if userID <= 0 {
		return DecreaseResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return DecreaseResult{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if amount < 1 {
		return DecreaseResult{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.cartItemRepo.FindByCartAndProduct(ctx, userID, productID)
	if err == repo.ErrNotFound {
		return DecreaseResult{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return DecreaseResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	newQty := item.Quantity - amount

	if newQty <= 0 {
		if err := u.cartItemRepo.DeleteByCartAndProduct(ctx, userID, productID); err != nil {
			return DecreaseResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return DecreaseResult{ProductID: productID, Quantity: 0, Deleted: true}, nil
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, userID, productID, newQty); err != nil {
		if err == repo.ErrNotFound {
			return DecreaseResult{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return DecreaseResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DecreaseResult{ProductID: productID, Quantity: newQty, Deleted: false}, nil
}

// RemoveItem は明細を完全に削除する。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	err := u.cartItemRepo.DeleteByCartAndProduct(ctx, userID, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// cartIDの明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})

		total += p.Price * it.Quantity
	}

	return CartResponse{UserID: cartID, Items: respItems, Total: total}, nil
}
