package model

import "github.com/shopspring/decimal"

// MenuItem 菜單品項, 只有價格不追蹤庫存
type MenuItem struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
	Price decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	BaseModel
}

type MenuPatch struct {
	Name  *string
	Price *decimal.Decimal
}

func (p MenuPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
