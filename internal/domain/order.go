package domain

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

type TimeInForce string

const (
	TimeInForceDay TimeInForce = "day"
	TimeInForceGTC TimeInForce = "gtc"
)

// OrderBy selects which amount field the user entered: a share quantity
// or a dollar notional.
type OrderBy string

const (
	OrderByQuantity OrderBy = "quantity"
	OrderByDollar   OrderBy = "dollar"
)

// OrderRequest is the vendor-shaped trade order payload. Exactly one of
// Quantity and Notional is populated: buy orders choose by dollar/quantity
// entry mode, sell orders always carry a quantity. LimitPrice is present
// iff Type is limit. Amounts are fixed-decimal strings (quantity 4dp,
// money 2dp).
type OrderRequest struct {
	Symbol      string      `json:"symbol"`
	Side        OrderSide   `json:"side"`
	Type        OrderType   `json:"type"`
	TimeInForce TimeInForce `json:"time_in_force"`
	Quantity    string      `json:"quantity,omitempty"`
	Notional    string      `json:"notional,omitempty"`
	LimitPrice  string      `json:"limit_price,omitempty"`
}
