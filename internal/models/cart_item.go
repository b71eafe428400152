package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车行
//
// 只保存商品主键，不快照商品状态：结算过程中对库存的修改
// 通过目录表对所有持有同一商品键的行可见。
// 行创建后不再修改；同一商品重复加购会产生多行。
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`       // 主键（同时决定收据行顺序）
	CartID    uint           `gorm:"not null;index" json:"cart_id"`   // 购物车ID
	ProductID uint           `gorm:"not null;index" json:"product_id"` // 商品ID（指向共享目录）
	Quantity  int            `gorm:"not null" json:"quantity"`   // 请求数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`    // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                 // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`             // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
