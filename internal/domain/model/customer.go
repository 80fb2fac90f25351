package model

import "time"

// Customer 的 TaxID 建立後不可修改, CustomerPatch 沒有對應欄位
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;type:varchar(100)" json:"name"`
	TaxID     string    `gorm:"uniqueIndex;not null;type:varchar(20)" json:"tax_id"`
	Age       int       `gorm:"not null" json:"age"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	BaseModel
}

type CustomerPatch struct {
	Name      *string
	Age       *int
	BirthDate *time.Time
}

func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.BirthDate == nil
}

// Apply copies the set fields onto c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
}
