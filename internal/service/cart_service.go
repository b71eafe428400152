package service

import (
	"strings"
	"time"

	"github.com/kiosk-next/internal/constants"
	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/repository"

	"github.com/google/uuid"
)

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	CartNo      string
	ProductName string
	Quantity    int
}

// CartService 购物车服务
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Open 为顾客开启一个新购物车
func (s *CartService) Open(customerName string) (*models.Cart, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrCustomerNotFound
	}
	customer, err := s.customerRepo.GetByName(customerName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	now := time.Now()
	cart := &models.Cart{
		CartNo:     uuid.NewString(),
		CustomerID: customer.ID,
		Status:     constants.CartStatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	cart.Customer = customer
	return cart, nil
}

// Get 按编号查询购物车详情
func (s *CartService) Get(cartNo string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByCartNo(strings.TrimSpace(cartNo))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddItem 追加购物车行
// 数量校验只针对加购时刻的库存；结算时会按当时库存重新校验。
// 校验失败时购物车不变；通过后无条件追加新行（不与已有行合并）。
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.cartRepo.GetByCartNo(strings.TrimSpace(input.CartNo))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if cart.Status != constants.CartStatusOpen {
		return nil, ErrCartConsumed
	}

	product, err := s.productRepo.GetByName(strings.TrimSpace(input.ProductName))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if input.Quantity > product.StockQuantity {
		return nil, ErrNotEnoughStock
	}

	now := time.Now()
	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.AddItem(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}
