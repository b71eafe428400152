package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer 顾客表
type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                 // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`                     // 顾客名
	Balance   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"balance"` // 账户余额（只在支付时减少）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                           // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
