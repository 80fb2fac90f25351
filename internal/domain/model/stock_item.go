package model

import "github.com/shopspring/decimal"

// StockItem 庫存, Quantity 永遠 >= 0
type StockItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
	Quantity  int             `gorm:"not null;default:0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	BaseModel
}

type StockPatch struct {
	Name      *string
	Quantity  *int
	UnitPrice *decimal.Decimal
}

func (p StockPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.UnitPrice == nil
}
