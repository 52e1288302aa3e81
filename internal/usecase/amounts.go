package usecase

import (
	"strings"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// AmountInput is one user-entered order amount plus the quote the trade
// page had on screen. Exactly one of Quantity/DollarAmount is
// authoritative, selected by OrderBy.
type AmountInput struct {
	OrderBy        domain.OrderBy
	Quantity       decimal.Decimal
	DollarAmount   decimal.Decimal
	ReferencePrice decimal.Decimal
}

// AmountResult carries the reconciled share quantity and dollar total.
type AmountResult struct {
	Quantity decimal.Decimal
	Total    decimal.Decimal
}

// ReconcileAmounts converts between share quantity and dollar notional
// given a reference price. With no reference price the authoritative
// input is echoed and the derived field stays zero: price unknown, the
// conversion is deferred to execution time. Pure, no side effects.
func ReconcileAmounts(in AmountInput) AmountResult {
	if in.ReferencePrice.IsZero() {
		if in.OrderBy == domain.OrderByDollar {
			return AmountResult{Total: in.DollarAmount}
		}
		return AmountResult{Quantity: in.Quantity}
	}

	if in.OrderBy == domain.OrderByDollar {
		return AmountResult{
			Quantity: in.DollarAmount.Div(in.ReferencePrice),
			Total:    in.DollarAmount,
		}
	}

	return AmountResult{
		Quantity: in.Quantity,
		Total:    in.Quantity.Mul(in.ReferencePrice),
	}
}

// FormatQuantity renders a share quantity as the vendor's fixed
// 4-decimal string, e.g. "3" -> "3.0000".
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// FormatMoney renders a dollar amount as a fixed 2-decimal string,
// e.g. 12.5 -> "12.50".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount parses a user-entered numeric string. A blank value is an
// explicit "not provided" and parses to zero; anything unparseable is a
// ParseError so the caller blocks submission instead of sending a
// zero-value order.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &domain.ParseError{Field: field, Value: value}
	}
	return d, nil
}
