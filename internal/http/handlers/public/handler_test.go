package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/provider"
	"github.com/kiosk-next/internal/repository"
	"github.com/kiosk-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type handlerTestEnv struct {
	engine *gin.Engine
	db     *gorm.DB
}

func setupHandlerTest(t *testing.T) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	container := &provider.Container{
		ProductRepo:     productRepo,
		CustomerRepo:    customerRepo,
		CartRepo:        cartRepo,
		ProductService:  service.NewProductService(productRepo),
		CustomerService: service.NewCustomerService(customerRepo),
		CartService:     service.NewCartService(cartRepo, productRepo, customerRepo),
		CheckoutService: service.NewCheckoutService(cartRepo, productRepo, customerRepo),
	}
	handler := New(container)

	engine := gin.New()
	apiV1 := engine.Group("/api/v1")
	apiV1.GET("/public/products", handler.GetProducts)
	apiV1.GET("/public/products/:name", handler.GetProductByName)
	apiV1.POST("/customers", handler.RegisterCustomer)
	apiV1.GET("/customers/:name", handler.GetCustomer)
	apiV1.POST("/carts", handler.OpenCart)
	apiV1.GET("/carts/:cart_no", handler.GetCart)
	apiV1.POST("/carts/:cart_no/items", handler.AddCartItem)
	apiV1.POST("/carts/:cart_no/checkout", handler.CheckoutCart)

	env := &handlerTestEnv{engine: engine, db: db}
	env.createProduct(t, "Cheese", 100, 10, 0.2)
	env.createProduct(t, "TV", 3000, 5, 0)
	env.createProduct(t, "ScratchCard", 50, 100, 0)
	return env
}

func (env *handlerTestEnv) createProduct(t *testing.T, name string, price int64, stock int, weightKG float64) {
	t.Helper()
	product := &models.Product{
		Name:          name,
		PriceAmount:   models.NewMoneyFromInt(price),
		StockQuantity: stock,
	}
	if weightKG > 0 {
		weight := decimal.NewFromFloat(weightKG)
		product.WeightKG = &weight
	}
	if err := env.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
}

func (env *handlerTestEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v (body %s)", err, w.Body.String())
	}
	return w, resp
}

func statusCodeOf(t *testing.T, resp map[string]json.RawMessage) int {
	t.Helper()
	var code int
	if err := json.Unmarshal(resp["status_code"], &code); err != nil {
		t.Fatalf("unmarshal status_code failed: %v", err)
	}
	return code
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	env := setupHandlerTest(t)

	_, resp := env.do(t, http.MethodPost, "/api/v1/customers", `{"name":"alice","balance":"1000"}`)
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("register customer status_code want 0 got %d", code)
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts", `{"customer_name":"alice"}`)
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("open cart status_code want 0 got %d", code)
	}
	var cart struct {
		CartNo string `json:"cart_no"`
	}
	if err := json.Unmarshal(resp["data"], &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.CartNo == "" {
		t.Fatalf("cart_no should not be empty")
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/"+cart.CartNo+"/items", `{"product_name":"Cheese","quantity":2}`)
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("add item status_code want 0 got %d", code)
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/"+cart.CartNo+"/checkout", "")
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("checkout status_code want 0 got %d", code)
	}
	var result struct {
		Subtotal     string `json:"subtotal"`
		ShippingFee  string `json:"shipping_fee"`
		TotalPaid    string `json:"total_paid"`
		BalanceAfter string `json:"balance_after"`
		ManifestText string `json:"manifest_text"`
		ReceiptText  string `json:"receipt_text"`
	}
	if err := json.Unmarshal(resp["data"], &result); err != nil {
		t.Fatalf("unmarshal checkout result failed: %v", err)
	}
	if result.Subtotal != "200.00" {
		t.Fatalf("subtotal want 200.00 got %s", result.Subtotal)
	}
	if result.TotalPaid != "230.00" {
		t.Fatalf("total_paid want 230.00 got %s", result.TotalPaid)
	}
	if result.BalanceAfter != "770.00" {
		t.Fatalf("balance_after want 770.00 got %s", result.BalanceAfter)
	}
	if !strings.Contains(result.ReceiptText, "** Checkout receipt **") {
		t.Fatalf("receipt_text should contain the receipt header, got %q", result.ReceiptText)
	}
	if !strings.Contains(result.ManifestText, "1x Cheese 400g") {
		t.Fatalf("manifest_text should list the cheese package, got %q", result.ManifestText)
	}

	// 结算后的购物车不可再次结算
	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/"+cart.CartNo+"/checkout", "")
	if code := statusCodeOf(t, resp); code != 409 {
		t.Fatalf("second checkout status_code want 409 got %d", code)
	}
}

func TestRegisterCustomerConflict(t *testing.T) {
	env := setupHandlerTest(t)

	_, resp := env.do(t, http.MethodPost, "/api/v1/customers", `{"name":"bob","balance":"500"}`)
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("first register status_code want 0 got %d", code)
	}
	_, resp = env.do(t, http.MethodPost, "/api/v1/customers", `{"name":"bob","balance":"500"}`)
	if code := statusCodeOf(t, resp); code != 409 {
		t.Fatalf("duplicate register status_code want 409 got %d", code)
	}
}

func TestAddCartItemErrors(t *testing.T) {
	env := setupHandlerTest(t)

	env.do(t, http.MethodPost, "/api/v1/customers", `{"name":"carol","balance":"100"}`)
	_, resp := env.do(t, http.MethodPost, "/api/v1/carts", `{"customer_name":"carol"}`)
	var cart struct {
		CartNo string `json:"cart_no"`
	}
	if err := json.Unmarshal(resp["data"], &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/"+cart.CartNo+"/items", `{"product_name":"Nothing","quantity":1}`)
	if code := statusCodeOf(t, resp); code != 404 {
		t.Fatalf("unknown product status_code want 404 got %d", code)
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/"+cart.CartNo+"/items", `{"product_name":"Cheese","quantity":999}`)
	if code := statusCodeOf(t, resp); code != 400 {
		t.Fatalf("over-stock status_code want 400 got %d", code)
	}

	_, resp = env.do(t, http.MethodPost, "/api/v1/carts/missing-cart/items", `{"product_name":"Cheese","quantity":1}`)
	if code := statusCodeOf(t, resp); code != 404 {
		t.Fatalf("missing cart status_code want 404 got %d", code)
	}
}

func TestGetProductByNameCaseInsensitive(t *testing.T) {
	env := setupHandlerTest(t)

	_, resp := env.do(t, http.MethodGet, "/api/v1/public/products/cheese", "")
	if code := statusCodeOf(t, resp); code != 0 {
		t.Fatalf("lookup status_code want 0 got %d", code)
	}
	var product struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp["data"], &product); err != nil {
		t.Fatalf("unmarshal product failed: %v", err)
	}
	if product.Name != "Cheese" {
		t.Fatalf("name want Cheese got %s", product.Name)
	}

	_, resp = env.do(t, http.MethodGet, "/api/v1/public/products/nothing", "")
	if code := statusCodeOf(t, resp); code != 404 {
		t.Fatalf("missing product status_code want 404 got %d", code)
	}
}
