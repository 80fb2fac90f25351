package model

import "github.com/shopspring/decimal"

// Payment 的 Type 為自由文字, Amount 不檢查正負
type Payment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id"`
	Type       string          `gorm:"not null;type:varchar(50)" json:"type"`
	Amount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	BaseModel
}

type CustomerPayment struct {
	Customer Customer
	Payment  Payment
}
