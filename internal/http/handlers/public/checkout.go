package public

import (
	"errors"

	"github.com/kiosk-next/internal/http/response"
	"github.com/kiosk-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutResponse 结算响应（结构化结果 + 渲染文本）
type CheckoutResponse struct {
	*service.CheckoutResult
	ManifestText string `json:"manifest_text,omitempty"`
	ReceiptText  string `json:"receipt_text"`
}

// CheckoutCart 结算购物车
func (h *Handler) CheckoutCart(c *gin.Context) {
	result, err := h.CheckoutService.Checkout(c.Param("cart_no"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			response.NotFound(c, "cart not found")
		case errors.Is(err, service.ErrCartConsumed):
			response.Error(c, response.CodeConflict, "cart already checked out")
		case errors.Is(err, service.ErrEmptyCart):
			response.BadRequest(c, "cart is empty")
		case errors.Is(err, service.ErrProductExpired):
			response.BadRequest(c, "product expired")
		case errors.Is(err, service.ErrOutOfStock):
			response.BadRequest(c, "product out of stock")
		case errors.Is(err, service.ErrInsufficientBalance):
			response.BadRequest(c, "insufficient balance")
		default:
			response.Error(c, response.CodeInternal, "checkout failed")
		}
		return
	}

	resp := CheckoutResponse{
		CheckoutResult: result,
		ReceiptText:    service.RenderReceipt(result),
	}
	if result.HasShipment() {
		resp.ManifestText = service.RenderManifest(result.Manifest, result.TotalWeightKG)
	}
	response.Success(c, resp)
}
