package router

import (
	"github.com/kiosk-next/internal/config"
	publichandlers "github.com/kiosk-next/internal/http/handlers/public"
	"github.com/kiosk-next/internal/logger"
	"github.com/kiosk-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:name", publicHandler.GetProductByName)
		}

		// 顾客
		apiV1.POST("/customers", publicHandler.RegisterCustomer)
		apiV1.GET("/customers/:name", publicHandler.GetCustomer)

		// 购物车与结算
		apiV1.POST("/carts", publicHandler.OpenCart)
		apiV1.GET("/carts/:cart_no", publicHandler.GetCart)
		apiV1.POST("/carts/:cart_no/items", publicHandler.AddCartItem)
		apiV1.POST("/carts/:cart_no/checkout", publicHandler.CheckoutCart)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
