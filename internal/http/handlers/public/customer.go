package public

import (
	"errors"

	"github.com/kiosk-next/internal/http/response"
	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRequest 顾客登记请求
type RegisterCustomerRequest struct {
	Name    string       `json:"name" binding:"required"`
	Balance models.Money `json:"balance"`
}

// RegisterCustomer 登记顾客及期初余额
func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	customer, err := h.CustomerService.Register(service.RegisterCustomerInput{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerExists):
			response.Error(c, response.CodeConflict, "customer already exists")
		case errors.Is(err, service.ErrInvalidBalance):
			response.BadRequest(c, "balance must not be negative")
		case errors.Is(err, service.ErrCustomerNotFound):
			response.BadRequest(c, "customer name required")
		default:
			response.Error(c, response.CodeInternal, "failed to register customer")
		}
		return
	}
	response.Success(c, customer)
}

// GetCustomer 按顾客名查询
func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.CustomerService.GetByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to load customer")
		return
	}
	response.Success(c, customer)
}
