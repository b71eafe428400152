package constants

// 购物车状态常量
const (
	CartStatusOpen       = "open"
	CartStatusCheckedOut = "checked_out"
)

// 商品名称触发规则常量（大小写不敏感匹配，参见结算服务）
const (
	ProductKeywordScratchCard = "scratchcard"
	ProductKeywordTV          = "tv"
)

// 结算常量
const (
	// ShippingFeeAmount 固定运费（每次结算收取一次，与重量和包裹数无关）
	ShippingFeeAmount = 30
	// BundledTVWeightKG 刮刮卡+电视捆绑规则附加的单台电视运单重量（kg）
	BundledTVWeightKG = 5.0
)
