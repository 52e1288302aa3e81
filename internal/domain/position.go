package domain

// Position is the client-facing projection of a vendor position record.
// It is read-only: the vendor owns the authoritative state.
type Position struct {
	Symbol        string  `json:"symbol"`
	Shares        float64 `json:"shares"`
	CurrentPrice  float64 `json:"currentPrice"`
	PurchasePrice float64 `json:"purchasePrice"`
	Value         float64 `json:"value"`
	Gain          float64 `json:"gain"`
	GainPercent   float64 `json:"gainPercent"`
}

// NewPosition derives the projection from normalized vendor numbers.
// marketValue, when the vendor supplies one, wins over shares*price, but
// a zero-share position always reports a value of 0 rather than null or
// a stale vendor figure.
func NewPosition(symbol string, shares, currentPrice, purchasePrice float64, marketValue *float64) Position {
	value := shares * currentPrice
	if marketValue != nil {
		value = *marketValue
	}
	if shares == 0 {
		value = 0
	}

	gain := (currentPrice - purchasePrice) * shares
	gainPercent := 0.0
	if purchasePrice > 0 && shares != 0 {
		gainPercent = (currentPrice - purchasePrice) / purchasePrice * 100
	}

	return Position{
		Symbol:        symbol,
		Shares:        shares,
		CurrentPrice:  currentPrice,
		PurchasePrice: purchasePrice,
		Value:         value,
		Gain:          gain,
		GainPercent:   gainPercent,
	}
}
