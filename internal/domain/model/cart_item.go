package model

import "time"

// カートの明細。(cart_id, product_id)の複合PK。
// quantityは常に正。0以下になったら行ごと削除する。
type CartItem struct {
	CartID    int64     `gorm:"primaryKey;column:cart_id" json:"cart_id"`
	ProductID int64     `gorm:"primaryKey;column:product_id" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
