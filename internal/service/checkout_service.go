package service

import (
	"strings"
	"time"

	"github.com/kiosk-next/internal/constants"
	"github.com/kiosk-next/internal/logger"
	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/repository"
	"github.com/kiosk-next/internal/shipping"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptLine 收据行（按购物车行插入顺序）
type ReceiptLine struct {
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	UnitPrice   models.Money `json:"unit_price"`
	LineTotal   models.Money `json:"line_total"`
}

// CheckoutResult 结算结果
type CheckoutResult struct {
	CartNo        string                 `json:"cart_no"`
	Lines         []ReceiptLine          `json:"lines"`
	Subtotal      models.Money           `json:"subtotal"`
	ShippingFee   models.Money           `json:"shipping_fee"`
	TotalPaid     models.Money           `json:"total_paid"`
	BalanceAfter  models.Money           `json:"balance_after"`
	Manifest      []shipping.ManifestRow `json:"manifest,omitempty"`
	TotalWeightKG decimal.Decimal        `json:"total_weight_kg"`
}

// HasShipment 判断本次结算是否产生运单
func (r *CheckoutResult) HasShipment() bool {
	return len(r.Manifest) > 0
}

// CheckoutService 结算服务
//
// 结算采取逐行提交策略：每行校验通过后立即扣库存，第 k 行失败时
// 前 k-1 行的扣减保留，不回滚。只有余额扣减在事务内执行。
type CheckoutService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Checkout 结算购物车
// 校验与扣减按购物车行顺序交错执行，首个失败即中止。
func (s *CheckoutService) Checkout(cartNo string) (*CheckoutResult, error) {
	cart, err := s.cartRepo.GetByCartNo(strings.TrimSpace(cartNo))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if cart.Status != constants.CartStatusOpen {
		return nil, ErrCartConsumed
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	subtotal := decimal.Zero
	lines := make([]ReceiptLine, 0, len(cart.Items))
	var units []shipping.Unit
	var tvQuantity int
	var hasScratchCard bool

	for _, item := range cart.Items {
		// 按结算时刻的目录状态重新读取，而不是加购时的快照
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if product.IsExpired(now) {
			return nil, ErrProductExpired
		}
		if item.Quantity > product.StockQuantity {
			return nil, ErrOutOfStock
		}

		// 本行立即提交扣减
		if err := s.productRepo.ReduceStock(product.ID, item.Quantity); err != nil {
			return nil, err
		}

		lineTotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal).Round(2)
		lines = append(lines, ReceiptLine{
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.PriceAmount,
			LineTotal:   models.NewMoneyFromDecimal(lineTotal),
		})

		name := strings.ToLower(strings.TrimSpace(product.Name))
		if name == constants.ProductKeywordScratchCard {
			hasScratchCard = true
		}
		if product.Shippable() {
			for i := 0; i < item.Quantity; i++ {
				units = append(units, shipping.Unit{Name: product.Name, WeightKG: *product.WeightKG})
			}
		}
		// 电视行的识别与其是否可寄送无关
		if name == constants.ProductKeywordTV {
			tvQuantity += item.Quantity
		}
	}

	// 捆绑规则：刮刮卡 + 电视 同时在购物车时，为每台电视追加一件
	// 固定 5kg 的 "TV" 运单件，排在所有常规运单件之后，
	// 不管电视商品本身是否声明了可寄送或重量。
	if hasScratchCard && tvQuantity > 0 {
		bundledWeight := decimal.NewFromFloat(constants.BundledTVWeightKG)
		for i := 0; i < tvQuantity; i++ {
			units = append(units, shipping.Unit{Name: "TV", WeightKG: bundledWeight})
		}
	}

	shippingFee := decimal.NewFromInt(constants.ShippingFeeAmount)
	total := subtotal.Add(shippingFee).Round(2)

	balanceAfter, err := s.debit(cart.CustomerID, total)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateStatus(cart.ID, constants.CartStatusCheckedOut); err != nil {
		return nil, err
	}

	manifest, totalWeight := shipping.Aggregate(units)

	logger.Infow("checkout_completed",
		"cart_no", cart.CartNo,
		"customer_id", cart.CustomerID,
		"lines", len(lines),
		"total", total.StringFixed(2),
		"shipment_units", len(units),
	)

	return &CheckoutResult{
		CartNo:        cart.CartNo,
		Lines:         lines,
		Subtotal:      models.NewMoneyFromDecimal(subtotal),
		ShippingFee:   models.NewMoneyFromDecimal(shippingFee),
		TotalPaid:     models.NewMoneyFromDecimal(total),
		BalanceAfter:  balanceAfter,
		Manifest:      manifest,
		TotalWeightKG: totalWeight,
	}, nil
}

// debit 在事务内加行锁扣减顾客余额
// 余额不足返回 ErrInsufficientBalance；此时库存扣减已经生效且不回滚。
func (s *CheckoutService) debit(customerID uint, amount decimal.Decimal) (models.Money, error) {
	var after models.Money
	err := s.customerRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.customerRepo.WithTx(tx)
		customer, err := repo.GetByIDForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		before := customer.Balance.Decimal.Round(2)
		if before.LessThan(amount) {
			return ErrInsufficientBalance
		}
		after = models.NewMoneyFromDecimal(before.Sub(amount))
		return repo.UpdateBalance(customerID, after)
	})
	if err != nil {
		return models.Money{}, err
	}
	return after, nil
}
