package public

import (
	"errors"

	"github.com/kiosk-next/internal/http/response"
	"github.com/kiosk-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OpenCartRequest 开启购物车请求
type OpenCartRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
}

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// OpenCart 为顾客开启一个新购物车
func (h *Handler) OpenCart(c *gin.Context) {
	var req OpenCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cart, err := h.CartService.Open(req.CustomerName)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to open cart")
		return
	}
	response.Success(c, cart)
}

// GetCart 按编号查询购物车详情
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.CartService.Get(c.Param("cart_no"))
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to load cart")
		return
	}
	response.Success(c, cart)
}

// AddCartItem 向购物车追加一行
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.CartService.AddItem(service.AddCartItemInput{
		CartNo:      c.Param("cart_no"),
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			response.NotFound(c, "cart not found")
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "product not found")
		case errors.Is(err, service.ErrCartConsumed):
			response.Error(c, response.CodeConflict, "cart already checked out")
		case errors.Is(err, service.ErrInvalidQuantity):
			response.BadRequest(c, "quantity must be positive")
		case errors.Is(err, service.ErrNotEnoughStock):
			response.BadRequest(c, "not enough stock")
		default:
			response.Error(c, response.CodeInternal, "failed to add cart item")
		}
		return
	}
	response.Success(c, item)
}
