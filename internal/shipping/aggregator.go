package shipping

import "github.com/shopspring/decimal"

// Unit 单件待寄送物品（每个物理件一条，而不是每个购物车行一条）
type Unit struct {
	Name     string          `json:"name"`
	WeightKG decimal.Decimal `json:"weight_kg"`
}

// ManifestRow 运单汇总行（同名商品合并后的总重量）
type ManifestRow struct {
	Name     string          `json:"name"`
	WeightKG decimal.Decimal `json:"weight_kg"`
}

// Aggregate 按商品名汇总待寄送物品
// 分组保持首次出现顺序，每组重量为该组所有物理件之和，
// 同时返回整个包裹的总重量。纯聚合，不触碰库存或余额。
func Aggregate(units []Unit) ([]ManifestRow, decimal.Decimal) {
	rows := make([]ManifestRow, 0, len(units))
	index := make(map[string]int, len(units))
	total := decimal.Zero
	for _, unit := range units {
		total = total.Add(unit.WeightKG)
		if i, ok := index[unit.Name]; ok {
			rows[i].WeightKG = rows[i].WeightKG.Add(unit.WeightKG)
			continue
		}
		index[unit.Name] = len(rows)
		rows = append(rows, ManifestRow{Name: unit.Name, WeightKG: unit.WeightKG})
	}
	return rows, total
}
