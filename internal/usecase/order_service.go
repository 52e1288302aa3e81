package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/nestegg-finance/bluum-gateway/internal/ports"
	"github.com/shopspring/decimal"
)

// OrderInput is the raw trade form as collected by the client. Numeric
// fields arrive as strings and are parsed exactly once, here.
type OrderInput struct {
	AccountID    string
	Symbol       string
	Side         domain.OrderSide
	Type         domain.OrderType
	TimeInForce  domain.TimeInForce
	OrderBy      domain.OrderBy
	Quantity     string
	DollarAmount string
	LimitPrice   string
}

type OrderService struct {
	trading ports.TradingPort
}

func NewOrderService(trading ports.TradingPort) *OrderService {
	return &OrderService{trading: trading}
}

// PlaceOrder validates and normalizes the trade form, then submits the
// vendor-shaped order with a fresh idempotency key. Sell orders are
// checked against the account's held shares before any submission; an
// insufficient-shares request never reaches the vendor.
func (s *OrderService) PlaceOrder(ctx context.Context, in OrderInput) (json.RawMessage, error) {
	if strings.TrimSpace(in.AccountID) == "" {
		return nil, domain.RequiredField("account_id")
	}
	if strings.TrimSpace(in.Symbol) == "" {
		return nil, domain.RequiredField("symbol")
	}

	if in.Side == domain.OrderSideSell {
		positions, err := s.trading.ListPositions(ctx, in.AccountID)
		if err != nil {
			return nil, err
		}
		order, err := BuildOrderRequest(in, heldShares(positions, in.Symbol))
		if err != nil {
			return nil, err
		}
		return s.trading.PlaceOrder(ctx, in.AccountID, order, uuid.NewString())
	}

	order, err := BuildOrderRequest(in, decimal.Zero)
	if err != nil {
		return nil, err
	}
	return s.trading.PlaceOrder(ctx, in.AccountID, order, uuid.NewString())
}

func (s *OrderService) ListOrders(ctx context.Context, accountID string) (json.RawMessage, error) {
	return s.trading.ListOrders(ctx, accountID)
}

func (s *OrderService) ListPositions(ctx context.Context, accountID string) ([]domain.Position, error) {
	return s.trading.ListPositions(ctx, accountID)
}

func heldShares(positions []domain.Position, symbol string) decimal.Decimal {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, p := range positions {
		if p.Symbol == symbol {
			return decimal.NewFromFloat(p.Shares)
		}
	}
	return decimal.Zero
}

// BuildOrderRequest assembles the vendor order payload. Rules run in
// order and the first failure wins:
//  1. account and symbol context must be present;
//  2. sell: quantity required and must not exceed held shares (hard
//     failure, never clamped);
//  3. buy: the field selected by OrderBy is required;
//  4. limit orders require a limit price.
//
// Quantity serializes at 4 decimals, notional and limit price at 2.
// Unparseable numerics fail with ParseError rather than serializing as
// zero.
func BuildOrderRequest(in OrderInput, held decimal.Decimal) (domain.OrderRequest, error) {
	var order domain.OrderRequest

	if strings.TrimSpace(in.AccountID) == "" {
		return order, domain.RequiredField("account_id")
	}
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return order, domain.RequiredField("symbol")
	}

	quantity, err := ParseAmount("quantity", in.Quantity)
	if err != nil {
		return order, err
	}
	dollarAmount, err := ParseAmount("dollarAmount", in.DollarAmount)
	if err != nil {
		return order, err
	}

	tif := in.TimeInForce
	if tif == "" {
		tif = domain.TimeInForceDay
	}
	order = domain.OrderRequest{
		Symbol:      symbol,
		Side:        in.Side,
		Type:        in.Type,
		TimeInForce: tif,
	}

	switch in.Side {
	case domain.OrderSideSell:
		if !quantity.IsPositive() {
			return domain.OrderRequest{}, domain.RequiredField("quantity")
		}
		if quantity.GreaterThan(held) {
			return domain.OrderRequest{}, &domain.ValidationError{
				Field:   "quantity",
				Message: "insufficient shares: you hold " + FormatQuantity(held) + " " + symbol,
			}
		}
		order.Quantity = FormatQuantity(quantity)

	case domain.OrderSideBuy:
		if in.OrderBy == domain.OrderByDollar {
			if !dollarAmount.IsPositive() {
				return domain.OrderRequest{}, domain.RequiredField("dollarAmount")
			}
			order.Notional = FormatMoney(dollarAmount)
		} else {
			if !quantity.IsPositive() {
				return domain.OrderRequest{}, domain.RequiredField("quantity")
			}
			order.Quantity = FormatQuantity(quantity)
		}

	default:
		return domain.OrderRequest{}, &domain.ValidationError{Field: "side", Message: "side must be buy or sell"}
	}

	if in.Type == domain.OrderTypeLimit {
		limitPrice, err := ParseAmount("limitPrice", in.LimitPrice)
		if err != nil {
			return domain.OrderRequest{}, err
		}
		if !limitPrice.IsPositive() {
			return domain.OrderRequest{}, domain.RequiredField("limitPrice")
		}
		order.LimitPrice = FormatMoney(limitPrice)
	}

	return order, nil
}
