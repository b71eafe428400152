package public

import (
	"errors"

	"github.com/kiosk-next/internal/http/response"
	"github.com/kiosk-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 返回商品目录（插入顺序）
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load catalog")
		return
	}
	response.Success(c, products)
}

// GetProductByName 按商品名查询（大小写不敏感）
func (h *Handler) GetProductByName(c *gin.Context) {
	product, err := h.ProductService.GetByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to load product")
		return
	}
	response.Success(c, product)
}
