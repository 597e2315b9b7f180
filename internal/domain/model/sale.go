package model

import "time"

// 売り手側の台帳。1回のcheckoutでカート内の売り手ごとに1件できる。
type Sale struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID    int64     `gorm:"not null;index" json:"seller_id"`
	TotalAmount int64     `gorm:"not null" json:"total_amount"`
	SaleDate    time.Time `gorm:"not null" json:"sale_date"`
}
