package main

import (
	"fmt"
	"time"

	"github.com/kiosk-next/internal/config"
	"github.com/kiosk-next/internal/logger"
	"github.com/kiosk-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()
	cheeseExpiry := now.AddDate(0, 0, 14)
	biscuitsExpiry := now.AddDate(0, 1, 0)
	milkExpiry := now.AddDate(0, 0, 7)
	expiredAt := now.AddDate(0, 0, -1)

	cheeseWeight := decimal.NewFromFloat(0.2)
	biscuitsWeight := decimal.NewFromFloat(0.7)
	milkWeight := decimal.NewFromFloat(1.0)

	// 添加商品目录
	products := []models.Product{
		{
			Name:          "Cheese",
			PriceAmount:   models.NewMoneyFromInt(100),
			StockQuantity: 10,
			ExpiresAt:     &cheeseExpiry,
			WeightKG:      &cheeseWeight,
		},
		{
			Name:          "Biscuits",
			PriceAmount:   models.NewMoneyFromInt(150),
			StockQuantity: 8,
			ExpiresAt:     &biscuitsExpiry,
			WeightKG:      &biscuitsWeight,
		},
		{
			Name:          "Milk",
			PriceAmount:   models.NewMoneyFromInt(80),
			StockQuantity: 12,
			ExpiresAt:     &milkExpiry,
			WeightKG:      &milkWeight,
		},
		{
			// 电视不走物流，捆绑规则会在结算时补运单件
			Name:          "TV",
			PriceAmount:   models.NewMoneyFromInt(3000),
			StockQuantity: 5,
		},
		{
			Name:          "ScratchCard",
			PriceAmount:   models.NewMoneyFromInt(50),
			StockQuantity: 100,
		},
		{
			// 过期演示商品
			Name:          "OldYogurt",
			PriceAmount:   models.NewMoneyFromInt(60),
			StockQuantity: 4,
			ExpiresAt:     &expiredAt,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("LOWER(name) = LOWER(?)", prod.Name).First(&existing).Error; err != nil {
			prod.CreatedAt = now
			prod.UpdatedAt = now
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", existing.Name)
		}
	}

	// 添加演示顾客
	customers := []models.Customer{
		{Name: "alice", Balance: models.NewMoneyFromInt(1000)},
		{Name: "bob", Balance: models.NewMoneyFromInt(5000)},
	}

	for _, cust := range customers {
		var existing models.Customer
		if err := models.DB.Where("LOWER(name) = LOWER(?)", cust.Name).First(&existing).Error; err != nil {
			cust.CreatedAt = now
			cust.UpdatedAt = now
			if err := models.DB.Create(&cust).Error; err != nil {
				stdLog.Printf("Failed to create customer %s: %v", cust.Name, err)
			} else {
				stdLog.Printf("Created customer: %s", cust.Name)
			}
		} else {
			stdLog.Printf("Customer already exists: %s", existing.Name)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 6 Products (含不可寄送与过期演示商品)")
	fmt.Println("- 2 Customers (alice: 1000, bob: 5000)")
}
