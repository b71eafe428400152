package service

import (
	"strings"

	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/repository"
)

// ProductService 商品目录服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品目录服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List 按插入顺序返回目录
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.List()
}

// GetByName 按商品名查询（大小写不敏感）
func (s *ProductService) GetByName(name string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
