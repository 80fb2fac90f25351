package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null;type:varchar(100)" json:"name"`
	TaxID     string          `gorm:"uniqueIndex;not null;type:varchar(20)" json:"tax_id"`
	Age       int             `gorm:"not null" json:"age"`
	BirthDate time.Time       `gorm:"type:date" json:"birth_date"`
	Role      string          `gorm:"not null;type:varchar(50)" json:"role"`
	Salary    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"salary"`
	BaseModel
}

type EmployeePatch struct {
	Name      *string
	Age       *int
	BirthDate *time.Time
	Role      *string
	Salary    *decimal.Decimal
}

func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.BirthDate == nil && p.Role == nil && p.Salary == nil
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Age != nil {
		e.Age = *p.Age
	}
	if p.BirthDate != nil {
		e.BirthDate = *p.BirthDate
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
}
