package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CheckoutUsecase はカートを購入/販売の台帳に変換する。
// 全工程が1トランザクション。途中で失敗したら全部巻き戻す。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

type PurchaseItemOutput struct {
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	Quantity     int64  `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type PurchaseOutput struct {
	ID           int64                `json:"id"`
	UserID       int64                `json:"user_id"`
	TotalAmount  int64                `json:"total_amount"`
	PurchaseDate time.Time            `json:"purchase_date"`
	Items        []PurchaseItemOutput `json:"items"`
}

// 売り手ごとの集計。カート内の出現順を保つ。
type sellerAggregate struct {
	totalAmount int64
	items       []model.SaleItem
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64) (PurchaseOutput, error) {
	if userID <= 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out PurchaseOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// カート取得。無い＝空として扱う
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return ErrEmptyCart
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.UserID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// 先にプレースホルダで購入レコードを作ってIDを得る
		now := time.Now()
		purchaseID, err := r.Purchases().Create(ctx, model.Purchase{
			UserID:       userID,
			TotalAmount:  0,
			PurchaseDate: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		var total int64 = 0
		purchaseItems := make([]model.PurchaseItem, 0, len(cartItems))
		sellerOrder := make([]int64, 0, len(cartItems))
		bySeller := make(map[int64]*sellerAggregate)

		for _, ci := range cartItems {
			// 行ロック付きで商品を取得。同じ商品への同時checkoutはここで直列化される
			p, err := r.Products().FindByIDForUpdate(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if ci.Quantity > p.Stock {
				return &InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   ci.Quantity,
					Available:   p.Stock,
				}
			}

			// 条件付き減算。行ロック済みだが在庫が負になる経路は残さない
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return &InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   ci.Quantity,
					Available:   p.Stock,
				}
			}

			subtotal := p.Price * ci.Quantity
			total += subtotal

			//スナップショット（買い手側）
			purchaseItems = append(purchaseItems, model.PurchaseItem{
				ProductName:  p.Name,
				ProductPrice: p.Price,
				Quantity:     ci.Quantity,
				Subtotal:     subtotal,
			})

			//売り手ごとに集計
			agg, exists := bySeller[p.SellerID]
			if !exists {
				agg = &sellerAggregate{}
				bySeller[p.SellerID] = agg
				sellerOrder = append(sellerOrder, p.SellerID)
			}
			agg.totalAmount += subtotal
			agg.items = append(agg.items, model.SaleItem{
				ProductName:  p.Name,
				ProductPrice: p.Price,
				Quantity:     ci.Quantity,
				Subtotal:     subtotal,
			})
		}

		// 売り手ごとにSaleと明細を作成
		for _, sellerID := range sellerOrder {
			agg := bySeller[sellerID]

			saleID, err := r.Sales().Create(ctx, model.Sale{
				SellerID:    sellerID,
				TotalAmount: agg.totalAmount,
				SaleDate:    now,
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if err := r.SaleItems().CreateBulk(ctx, saleID, agg.items); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		//買い手の明細を一括作成
		if err := r.PurchaseItems().CreateBulk(ctx, purchaseID, purchaseItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//合計を確定
		if err := r.Purchases().UpdateTotal(ctx, purchaseID, total); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空にする
		if err := r.CartItems().DeleteByCartID(ctx, cart.UserID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toPurchaseOutput(model.Purchase{
			ID:           purchaseID,
			UserID:       userID,
			TotalAmount:  total,
			PurchaseDate: now,
		}, purchaseItems)
		return nil
	})

	if err != nil {
		return PurchaseOutput{}, err
	}
	return out, nil
}

func toPurchaseOutput(p model.Purchase, items []model.PurchaseItem) PurchaseOutput {
	outItems := make([]PurchaseItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, PurchaseItemOutput{
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal,
		})
	}

	return PurchaseOutput{
		ID:           p.ID,
		UserID:       p.UserID,
		TotalAmount:  p.TotalAmount,
		PurchaseDate: p.PurchaseDate,
		Items:        outItems,
	}
}
