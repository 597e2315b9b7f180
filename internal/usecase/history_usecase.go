package usecase

import (
	"context"
	"net/http"
	"time"

	repo "app/internal/repository"
)

// HistoryUsecase は購入履歴（買い手）と販売履歴（売り手）を返す。
// 台帳は追記のみなのでここは読むだけ。
type HistoryUsecase struct {
	purchaseRepo     repo.PurchaseRepository
	purchaseItemRepo repo.PurchaseItemRepository
	saleRepo         repo.SaleRepository
	saleItemRepo     repo.SaleItemRepository
}

func NewHistoryUsecase(
	purchaseRepo repo.PurchaseRepository,
	purchaseItemRepo repo.PurchaseItemRepository,
	saleRepo repo.SaleRepository,
	saleItemRepo repo.SaleItemRepository,
) *HistoryUsecase {
	return &HistoryUsecase{
		purchaseRepo:     purchaseRepo,
		purchaseItemRepo: purchaseItemRepo,
		saleRepo:         saleRepo,
		saleItemRepo:     saleItemRepo,
	}
}

type SaleItemOutput struct {
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	Quantity     int64  `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type SaleOutput struct {
	ID          int64            `json:"id"`
	SellerID    int64            `json:"seller_id"`
	TotalAmount int64            `json:"total_amount"`
	SaleDate    time.Time        `json:"sale_date"`
	Items       []SaleItemOutput `json:"items"`
}

func (u *HistoryUsecase) ListPurchases(ctx context.Context, userID int64) ([]PurchaseOutput, error) {
	if userID <= 0 {
		return []PurchaseOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	purchases, err := u.purchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []PurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]PurchaseOutput, 0, len(purchases))
	for _, p := range purchases {
		items, err := u.purchaseItemRepo.ListByPurchaseID(ctx, p.ID)
		if err != nil {
			return []PurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toPurchaseOutput(p, items))
	}
	return outs, nil
}

func (u *HistoryUsecase) ListSales(ctx context.Context, sellerID int64) ([]SaleOutput, error) {
	if sellerID <= 0 {
		return []SaleOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	sales, err := u.saleRepo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return []SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]SaleOutput, 0, len(sales))
	for _, s := range sales {
		items, err := u.saleItemRepo.ListBySaleID(ctx, s.ID)
		if err != nil {
			return []SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outItems := make([]SaleItemOutput, 0, len(items))
		for _, it := range items {
			outItems = append(outItems, SaleItemOutput{
				ProductName:  it.ProductName,
				ProductPrice: it.ProductPrice,
				Quantity:     it.Quantity,
				Subtotal:     it.Subtotal,
			})
		}

		outs = append(outs, SaleOutput{
			ID:          s.ID,
			SellerID:    s.SellerID,
			TotalAmount: s.TotalAmount,
			SaleDate:    s.SaleDate,
			Items:       outItems,
		})
	}
	return outs, nil
}
