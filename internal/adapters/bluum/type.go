package bluum

import (
	"strconv"
	"strings"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// looseNumber tolerates vendor numerics arriving as JSON numbers, quoted
// strings, or null. An unparseable value decodes to nil rather than
// failing the whole positions response.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n.value = f
	n.ok = true
	return nil
}

// firstNumber returns the first decodable candidate, honoring the
// documented fallback order of the callers.
func firstNumber(candidates ...*looseNumber) (float64, bool) {
	for _, c := range candidates {
		if c != nil && c.ok {
			return c.value, true
		}
	}
	return 0, false
}

// positionPayload mirrors the vendor's loosely typed position record: the
// price can show up as current_price, price, or nested data.current_price
// depending on the endpoint version.
type positionPayload struct {
	Symbol        string       `json:"symbol"`
	Qty           *looseNumber `json:"qty"`
	Quantity      *looseNumber `json:"quantity"`
	AvgEntryPrice *looseNumber `json:"avg_entry_price"`
	PurchasePrice *looseNumber `json:"purchase_price"`
	CurrentPrice  *looseNumber `json:"current_price"`
	Price         *looseNumber `json:"price"`
	MarketValue   *looseNumber `json:"market_value"`
	Data          *struct {
		CurrentPrice *looseNumber `json:"current_price"`
	} `json:"data"`
}

// normalize resolves the fallback chains once, in one place:
// shares: qty, quantity; price: current_price, price, data.current_price;
// cost basis: avg_entry_price, purchase_price.
func (p positionPayload) normalize() domain.Position {
	shares, _ := firstNumber(p.Qty, p.Quantity)
	purchase, _ := firstNumber(p.AvgEntryPrice, p.PurchasePrice)

	priceCandidates := []*looseNumber{p.CurrentPrice, p.Price}
	if p.Data != nil {
		priceCandidates = append(priceCandidates, p.Data.CurrentPrice)
	}
	price, _ := firstNumber(priceCandidates...)

	var marketValue *float64
	if v, ok := firstNumber(p.MarketValue); ok {
		marketValue = &v
	}

	return domain.NewPosition(strings.ToUpper(p.Symbol), shares, price, purchase, marketValue)
}
