package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
//
// 商品的两个能力维度（可过期、可寄送）不再通过类型层级表达，
// 而是用两个可选字段承载：ExpiresAt 为空表示永不过期，
// WeightKG 为空表示不参与运单。
type Product struct {
	ID            uint             `gorm:"primarykey" json:"id"`                                      // 主键
	Name          string           `gorm:"uniqueIndex;not null" json:"name"`                          // 商品名（目录键，大小写不敏感匹配）
	PriceAmount   Money            `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 单价（创建后不变）
	StockQuantity int              `gorm:"not null;default:0" json:"stock_quantity"`                  // 库存数量
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"`                                      // 过期时间（为空表示不过期）
	WeightKG      *decimal.Decimal `gorm:"type:decimal(20,3)" json:"weight_kg,omitempty"`             // 单件重量 kg（为空表示不可寄送）
	CreatedAt     time.Time        `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time        `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// IsExpired 判断商品在给定时刻是否已过期
// 过期语义：now 严格晚于 ExpiresAt；不可过期商品恒为 false。
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// Shippable 判断商品是否参与运单
func (p *Product) Shippable() bool {
	return p.WeightKG != nil
}
