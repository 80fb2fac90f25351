package model

import (
	"time"
)

// 不使用軟刪除: tax_id / name 唯一鍵在刪除後要可以重新建立
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"null"`
}
