package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart 购物车表
//
// 每次会话创建一个购物车，结算后标记为 checked_out，不再复用。
type Cart struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // 主键
	CartNo     string         `gorm:"uniqueIndex;not null" json:"cart_no"`                      // 购物车编号
	CustomerID uint           `gorm:"not null;index" json:"customer_id"`                        // 顾客ID
	Status     string         `gorm:"type:varchar(20);not null;default:'open'" json:"status"`  // 状态（open/checked_out）
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                               // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	// 关联
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"` // 顾客信息
	Items    []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`        // 购物车行（按插入顺序）
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
