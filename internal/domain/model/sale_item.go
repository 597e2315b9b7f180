package model

type SaleItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID       int64  `gorm:"not null;index" json:"sale_id"`
	ProductName  string `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductPrice int64  `gorm:"not null" json:"product_price"`
	Quantity     int64  `gorm:"not null" json:"quantity"`
	Subtotal     int64  `gorm:"not null" json:"subtotal"`
}
