package model

// 購入時点の商品スナップショット（不変）。
type PurchaseItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID   int64  `gorm:"not null;index" json:"purchase_id"`
	ProductName  string `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductPrice int64  `gorm:"not null" json:"product_price"`
	Quantity     int64  `gorm:"not null" json:"quantity"`
	Subtotal     int64  `gorm:"not null" json:"subtotal"`
}
