package model

import "time"

// 買い手側の台帳。checkoutでのみ作成され、以後変更されない。
type Purchase struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	TotalAmount  int64     `gorm:"not null" json:"total_amount"`
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`
}
