package service

import (
	"strings"
	"time"

	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/repository"

	"github.com/shopspring/decimal"
)

// RegisterCustomerInput 顾客注册输入
type RegisterCustomerInput struct {
	Name    string
	Balance models.Money
}

// CustomerService 顾客服务
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService 创建顾客服务
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Register 登记顾客及期初余额
func (s *CustomerService) Register(input RegisterCustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCustomerNotFound
	}
	if input.Balance.Decimal.LessThan(decimal.Zero) {
		return nil, ErrInvalidBalance
	}
	existing, err := s.customerRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCustomerExists
	}

	now := time.Now()
	customer := &models.Customer{
		Name:      name,
		Balance:   input.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByName 按顾客名查询
func (s *CustomerService) GetByName(name string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCustomerNotFound
	}
	customer, err := s.customerRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}
