package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

type tradingStub struct {
	positions []domain.Position
	placed    []domain.OrderRequest
	keys      []string
}

func (s *tradingStub) PlaceOrder(_ context.Context, _ string, order domain.OrderRequest, key string) (json.RawMessage, error) {
	s.placed = append(s.placed, order)
	s.keys = append(s.keys, key)
	return json.RawMessage(`{"id":"order-1","status":"accepted"}`), nil
}

func (s *tradingStub) ListOrders(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *tradingStub) ListPositions(context.Context, string) ([]domain.Position, error) {
	return s.positions, nil
}

func buyInput() OrderInput {
	return OrderInput{
		AccountID: "acct-1",
		Symbol:    "aapl",
		Side:      domain.OrderSideBuy,
		Type:      domain.OrderTypeMarket,
		OrderBy:   domain.OrderByDollar,
	}
}

func TestPlaceOrderBuyDollar(t *testing.T) {
	stub := &tradingStub{}
	svc := NewOrderService(stub)

	in := buyInput()
	in.DollarAmount = "250"

	_, err := svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, stub.placed, 1)

	order := stub.placed[0]
	require.Equal(t, "AAPL", order.Symbol)
	require.Equal(t, "250.00", order.Notional)
	require.Empty(t, order.Quantity, "buy by dollar must not carry a quantity")
	require.Equal(t, domain.TimeInForceDay, order.TimeInForce)
	require.NotEmpty(t, stub.keys[0], "every submission gets an idempotency key")
}

func TestPlaceOrderBuyQuantity(t *testing.T) {
	stub := &tradingStub{}
	svc := NewOrderService(stub)

	in := buyInput()
	in.OrderBy = domain.OrderByQuantity
	in.Quantity = "3"

	_, err := svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "3.0000", stub.placed[0].Quantity)
	require.Empty(t, stub.placed[0].Notional)
}

func TestPlaceOrderSellWithinHeldShares(t *testing.T) {
	stub := &tradingStub{positions: []domain.Position{{Symbol: "AAPL", Shares: 5}}}
	svc := NewOrderService(stub)

	_, err := svc.PlaceOrder(context.Background(), OrderInput{
		AccountID: "acct-1",
		Symbol:    "AAPL",
		Side:      domain.OrderSideSell,
		Type:      domain.OrderTypeMarket,
		Quantity:  "2",
	})
	require.NoError(t, err)
	require.Equal(t, "2.0000", stub.placed[0].Quantity)
}

func TestPlaceOrderSellInsufficientShares(t *testing.T) {
	stub := &tradingStub{positions: []domain.Position{{Symbol: "AAPL", Shares: 5}}}
	svc := NewOrderService(stub)

	_, err := svc.PlaceOrder(context.Background(), OrderInput{
		AccountID: "acct-1",
		Symbol:    "AAPL",
		Side:      domain.OrderSideSell,
		Type:      domain.OrderTypeMarket,
		Quantity:  "6",
	})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Empty(t, stub.placed, "insufficient shares must never reach the trading API")
}

func TestBuildOrderRequestValidationOrder(t *testing.T) {
	testCases := []struct {
		desc      string
		input     OrderInput
		wantField string
	}{
		{
			"missing account first",
			OrderInput{Symbol: "AAPL", Side: domain.OrderSideBuy},
			"account_id",
		},
		{
			"missing symbol",
			OrderInput{AccountID: "acct-1", Side: domain.OrderSideBuy},
			"symbol",
		},
		{
			"sell without quantity",
			OrderInput{AccountID: "acct-1", Symbol: "AAPL", Side: domain.OrderSideSell},
			"quantity",
		},
		{
			"buy by dollar without amount",
			OrderInput{AccountID: "acct-1", Symbol: "AAPL", Side: domain.OrderSideBuy, OrderBy: domain.OrderByDollar},
			"dollarAmount",
		},
		{
			"buy by quantity without quantity",
			OrderInput{AccountID: "acct-1", Symbol: "AAPL", Side: domain.OrderSideBuy, OrderBy: domain.OrderByQuantity},
			"quantity",
		},
		{
			"limit without price",
			OrderInput{AccountID: "acct-1", Symbol: "AAPL", Side: domain.OrderSideBuy, Type: domain.OrderTypeLimit, OrderBy: domain.OrderByQuantity, Quantity: "1"},
			"limitPrice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := BuildOrderRequest(tc.input, dec("0"))
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			require.Equal(t, tc.wantField, validation.Field)
		})
	}
}

func TestBuildOrderRequestRejectsUnparseableNumbers(t *testing.T) {
	in := OrderInput{
		AccountID: "acct-1",
		Symbol:    "AAPL",
		Side:      domain.OrderSideBuy,
		OrderBy:   domain.OrderByQuantity,
		Quantity:  "not-a-number",
	}
	_, err := BuildOrderRequest(in, dec("0"))

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr, "malformed input blocks submission instead of serializing as 0.0000")

	in.Quantity = "1"
	in.Type = domain.OrderTypeLimit
	in.LimitPrice = "12,50"
	_, err = BuildOrderRequest(in, dec("0"))
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "limitPrice", parseErr.Field)
}

func TestBuildOrderRequestLimitFormatting(t *testing.T) {
	order, err := BuildOrderRequest(OrderInput{
		AccountID:  "acct-1",
		Symbol:     "msft",
		Side:       domain.OrderSideBuy,
		Type:       domain.OrderTypeLimit,
		OrderBy:    domain.OrderByQuantity,
		Quantity:   "3",
		LimitPrice: "12.5",
	}, dec("0"))
	require.NoError(t, err)
	require.Equal(t, "MSFT", order.Symbol)
	require.Equal(t, "3.0000", order.Quantity)
	require.Equal(t, "12.50", order.LimitPrice)
}
