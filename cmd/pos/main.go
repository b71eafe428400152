package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kiosk-next/internal/config"
	"github.com/kiosk-next/internal/logger"
	"github.com/kiosk-next/internal/models"
	"github.com/kiosk-next/internal/provider"
	"github.com/kiosk-next/internal/service"
)

// 交互式收银终端：为单个顾客开一个购物车，逐行加购后结算。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	container := provider.NewContainer(cfg)
	reader := bufio.NewScanner(os.Stdin)

	fmt.Print("Customer name: ")
	if !reader.Scan() {
		return
	}
	customerName := strings.TrimSpace(reader.Text())

	cart, err := container.CartService.Open(customerName)
	if err != nil {
		stdLog.Fatalf("开启购物车失败: %v", err)
	}
	fmt.Printf("Cart %s opened for %s\n\n", cart.CartNo, cart.Customer.Name)

	printCatalog(container)
	fmt.Println(`Commands: "<product> <qty>" to add, "list", "done" to checkout, "quit"`)

	for {
		fmt.Print("> ")
		if !reader.Scan() {
			return
		}
		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			return
		case "list":
			printCatalog(container)
			continue
		case "checkout", "done":
			result, err := container.CheckoutService.Checkout(cart.CartNo)
			if err != nil {
				fmt.Printf("checkout failed: %v\n", err)
				// 购物车仍可结算时允许继续修正后重试
				continue
			}
			if result.HasShipment() {
				fmt.Print(service.RenderManifest(result.Manifest, result.TotalWeightKG))
			}
			fmt.Print(service.RenderReceipt(result))
			return
		}

		fields := strings.Fields(input)
		if len(fields) != 2 {
			fmt.Println(`usage: "<product> <qty>"`)
			continue
		}
		quantity, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Printf("invalid quantity: %s\n", fields[1])
			continue
		}

		item, err := container.CartService.AddItem(service.AddCartItemInput{
			CartNo:      cart.CartNo,
			ProductName: fields[0],
			Quantity:    quantity,
		})
		if err != nil {
			// 加购失败不影响已有行，继续读下一条
			fmt.Printf("add failed: %v\n", err)
			continue
		}
		fmt.Printf("added %dx %s\n", item.Quantity, item.Product.Name)
	}
}

func printCatalog(container *provider.Container) {
	products, err := container.ProductService.List()
	if err != nil {
		fmt.Printf("failed to load catalog: %v\n", err)
		return
	}
	fmt.Println("Catalog:")
	for _, p := range products {
		fmt.Printf("  %-12s %8s  stock %d\n", p.Name, p.PriceAmount.Decimal.StringFixed(0), p.StockQuantity)
	}
	fmt.Println()
}
