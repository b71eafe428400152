package provider

import (
	"github.com/kiosk-next/internal/config"
	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/repository"
	"github.com/kiosk-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	CartRepo     repository.CartRepository

	// Services
	ProductService  *service.ProductService
	CustomerService *service.CustomerService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.CustomerRepo)
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, c.ProductRepo, c.CustomerRepo)
}
