package bluum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

// transferRequest is the flat snake_case shape the vendor expects for
// both deposits and withdrawals. The funding descriptor's populated
// variant flattens into the matching fields.
type transferRequest struct {
	Amount           string `json:"amount"`
	PlaidPublicToken string `json:"plaid_public_token,omitempty"`
	PlaidItemID      string `json:"plaid_item_id,omitempty"`
	PlaidAccountID   string `json:"plaid_account_id,omitempty"`
	BankRouting      string `json:"bank_routing_number,omitempty"`
	BankAccount      string `json:"bank_account_number,omitempty"`
}

func newTransferRequest(amount string, funding domain.FundingDescriptor) transferRequest {
	req := transferRequest{Amount: amount}
	switch funding.Kind {
	case domain.FundingPlaidNew:
		req.PlaidPublicToken = funding.PublicToken
	case domain.FundingPlaidStored:
		req.PlaidItemID = funding.ItemID
		req.PlaidAccountID = funding.AccountID
	case domain.FundingManual:
		req.BankRouting = funding.BankRouting
		req.BankAccount = funding.BankAccount
	}
	return req
}

func (c *Client) CreateDeposit(ctx context.Context, accountID, amount string, funding domain.FundingDescriptor) (json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/deposits", accountID)
	return c.do(ctx, http.MethodPost, path, newTransferRequest(amount, funding), nil)
}

func (c *Client) CreateWithdrawal(ctx context.Context, accountID, amount string, funding domain.FundingDescriptor, idempotencyKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/withdrawals", accountID)
	return c.do(ctx, http.MethodPost, path, newTransferRequest(amount, funding), idempotencyHeader(idempotencyKey))
}

func (c *Client) ListFundingSources(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/funding-sources", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) RemoveFundingSource(ctx context.Context, accountID, sourceID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/funding-sources/%s", accountID, sourceID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) ListTransactions(ctx context.Context, accountID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/transactions", accountID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}
