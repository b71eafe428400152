package repository

import (
	"errors"

	"github.com/kiosk-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByCartNo(cartNo string) (*models.Cart, error)
	AddItem(item *models.CartItem) error
	CountItems(cartID uint) (int64, error)
	UpdateStatus(cartID uint, status string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByCartNo 按编号查询购物车（行按插入顺序预加载）
func (r *GormCartRepository) GetByCartNo(cartNo string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Items.Product").
		Preload("Customer").
		Where("cart_no = ?", cartNo).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem 追加购物车行
// 同一商品重复加购不合并，始终新增一行。
func (r *GormCartRepository) AddItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// CountItems 统计购物车行数
func (r *GormCartRepository) CountItems(cartID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus 更新购物车状态
func (r *GormCartRepository) UpdateStatus(cartID uint, status string) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("status", status).Error
}
