package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const labelTaxIDDigits = 3

type Order struct {
	OrderID    string          `gorm:"primaryKey;type:varchar(36)" json:"order_id"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id"`
	Label      string          `gorm:"not null;type:varchar(32)" json:"label"`
	Sequence   int             `gorm:"not null" json:"sequence"`
	Total      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total"`
	OrderDate  time.Time       `gorm:"not null" json:"order_date"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 一對多，級聯刪除
	BaseModel
}

// OrderItem 訂單與商品的關聯表, 同一商品重複點選會是多筆
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     string          `gorm:"not null;index;type:varchar(36)" json:"order_id"`
	Position    int             `gorm:"not null" json:"position"`
	ProductName string          `gorm:"not null;type:varchar(100)" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	BaseModel
}

// OrderLabel builds the comanda: last three characters of the tax-id followed by the sequence.
// Tax-ids shorter than three characters are used whole.
func OrderLabel(taxID string, sequence int) string {
	return taxIDSuffix(taxID) + strconv.Itoa(sequence)
}

// Receipt 列印用的 comanda 文字
func (o *Order) Receipt(taxID string) string {
	return fmt.Sprintf("CPF: %s\nPedidos: %d", taxIDSuffix(taxID), o.Sequence)
}

// taxIDSuffix 以 rune 計算, 避免切到多位元組字元
func taxIDSuffix(taxID string) string {
	r := []rune(taxID)
	if len(r) > labelTaxIDDigits {
		return string(r[len(r)-labelTaxIDDigits:])
	}
	return taxID
}
