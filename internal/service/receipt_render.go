package service

import (
	"fmt"
	"strings"

	"github.com/kiosk-next/internal/shipping"

	"github.com/shopspring/decimal"
)

// RenderManifest 渲染运单文本
// 每个聚合组一行，重量以克显示（kg×1000，无小数位）；
// 行首的 "1x" 是固定标签，不代表组内件数。
// 末行为包裹总重量，以 kg 显示且保留一位小数。
func RenderManifest(rows []shipping.ManifestRow, totalWeightKG decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("** Shipment notice **\n")
	for _, row := range rows {
		grams := row.WeightKG.Mul(decimal.NewFromInt(1000))
		fmt.Fprintf(&b, "1x %s %sg\n", row.Name, grams.StringFixed(0))
	}
	fmt.Fprintf(&b, "Total package weight %skg\n", totalWeightKG.StringFixed(1))
	return b.String()
}

// RenderReceipt 渲染收据文本
// 收据行按购物车行插入顺序输出，金额一律不带小数位。
func RenderReceipt(result *CheckoutResult) string {
	var b strings.Builder
	b.WriteString("** Checkout receipt **\n")
	for _, line := range result.Lines {
		fmt.Fprintf(&b, "%dx %s  %s\n", line.Quantity, line.ProductName, line.LineTotal.Decimal.StringFixed(0))
	}
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal %s\n", result.Subtotal.Decimal.StringFixed(0))
	fmt.Fprintf(&b, "Shipping %s\n", result.ShippingFee.Decimal.StringFixed(0))
	fmt.Fprintf(&b, "Amount %s\n", result.TotalPaid.Decimal.StringFixed(0))
	fmt.Fprintf(&b, "Balance %s\n", result.BalanceAfter.Decimal.StringFixed(0))
	return b.String()
}
