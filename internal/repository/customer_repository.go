package repository

import (
	"errors"

	"github.com/kiosk-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerRepository 顾客数据访问接口
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByName(name string) (*models.Customer, error)
	GetByIDForUpdate(id uint) (*models.Customer, error)
	UpdateBalance(id uint, balance models.Money) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormCustomerRepository
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCustomerRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create 创建顾客
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID 按主键查询顾客
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByName 按顾客名查询（大小写不敏感）
func (r *GormCustomerRepository) GetByName(name string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByIDForUpdate 按主键查询并加行锁（事务内使用）
func (r *GormCustomerRepository) GetByIDForUpdate(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// UpdateBalance 写入余额
func (r *GormCustomerRepository) UpdateBalance(id uint, balance models.Money) error {
	return r.db.Model(&models.Customer{}).
		Where("id = ?", id).
		UpdateColumn("balance", balance).Error
}
