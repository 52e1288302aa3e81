package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/nestegg-finance/bluum-gateway/internal/ports"
)

// PlaidOptions is the client-side Plaid payload: a fresh Link public
// token, or the item/account pair of a previously linked bank.
type PlaidOptions struct {
	PublicToken string
	ItemID      string
	AccountID   string
}

// FundingInput is everything a deposit or withdrawal request can carry
// about where the money comes from or goes.
type FundingInput struct {
	Plaid *PlaidOptions
	// legacy funding_details.bank_account_id from older clients
	LegacyBankAccountID string
	// manual bank entry, withdrawals only
	Method      string
	BankRouting string
	BankAccount string
}

// ResolveFundingSource produces the one canonical funding descriptor the
// vendor accepts. Resolution order: an explicit plaidOptions object wins;
// a legacy bank_account_id maps onto the stored-item fields; anything
// else fails with the Plaid-options validation error.
func ResolveFundingSource(in FundingInput) (domain.FundingDescriptor, error) {
	if in.Plaid != nil {
		if in.Plaid.PublicToken != "" {
			return domain.FundingDescriptor{
				Kind:        domain.FundingPlaidNew,
				PublicToken: in.Plaid.PublicToken,
			}, nil
		}
		if in.Plaid.ItemID != "" {
			return domain.FundingDescriptor{
				Kind:      domain.FundingPlaidStored,
				ItemID:    in.Plaid.ItemID,
				AccountID: in.Plaid.AccountID,
			}, nil
		}
		return domain.FundingDescriptor{}, &domain.ValidationError{
			Field:   "plaidOptions",
			Message: "Plaid options are required",
		}
	}

	// Older clients stored a single funding-source id; it doubles as the
	// Plaid item and account reference on the vendor side.
	if id := strings.TrimSpace(in.LegacyBankAccountID); id != "" {
		return domain.FundingDescriptor{
			Kind:      domain.FundingPlaidStored,
			ItemID:    id,
			AccountID: id,
		}, nil
	}

	return domain.FundingDescriptor{}, &domain.ValidationError{
		Field:   "plaidOptions",
		Message: "Plaid options are required",
	}
}

// ResolveWithdrawalFunding adds the withdrawal-only manual bank path on
// top of ResolveFundingSource. The manual path is deliberately disabled
// at submission time; this is a current product limitation, not a bug.
func ResolveWithdrawalFunding(in FundingInput) (domain.FundingDescriptor, error) {
	if in.Method == "bank_transfer" || (in.Plaid == nil && in.LegacyBankAccountID == "" && in.BankRouting != "") {
		return domain.FundingDescriptor{}, &domain.FeatureDisabledError{
			Message: "Manual bank transfers are not available yet. Please withdraw to a linked Plaid account.",
		}
	}
	return ResolveFundingSource(in)
}

type FundingService struct {
	payments ports.PaymentsPort
}

func NewFundingService(payments ports.PaymentsPort) *FundingService {
	return &FundingService{payments: payments}
}

func (s *FundingService) Deposit(ctx context.Context, accountID, amount string, in FundingInput) (json.RawMessage, error) {
	normalized, err := normalizeTransferAmount(amount)
	if err != nil {
		return nil, err
	}
	funding, err := ResolveFundingSource(in)
	if err != nil {
		return nil, err
	}
	return s.payments.CreateDeposit(ctx, accountID, normalized, funding)
}

func (s *FundingService) Withdraw(ctx context.Context, accountID, amount string, in FundingInput, idempotencyKey string) (json.RawMessage, error) {
	normalized, err := normalizeTransferAmount(amount)
	if err != nil {
		return nil, err
	}
	funding, err := ResolveWithdrawalFunding(in)
	if err != nil {
		return nil, err
	}
	return s.payments.CreateWithdrawal(ctx, accountID, normalized, funding, idempotencyKey)
}

func (s *FundingService) ListFundingSources(ctx context.Context, accountID string) (json.RawMessage, error) {
	return s.payments.ListFundingSources(ctx, accountID)
}

func (s *FundingService) RemoveFundingSource(ctx context.Context, accountID, sourceID string) (json.RawMessage, error) {
	if sourceID == "" {
		return nil, domain.RequiredField("source_id")
	}
	return s.payments.RemoveFundingSource(ctx, accountID, sourceID)
}

func (s *FundingService) ListTransactions(ctx context.Context, accountID string) (json.RawMessage, error) {
	return s.payments.ListTransactions(ctx, accountID)
}

func normalizeTransferAmount(amount string) (string, error) {
	d, err := ParseAmount("amount", amount)
	if err != nil {
		return "", err
	}
	if d.IsZero() {
		return "", domain.RequiredField("amount")
	}
	if d.IsNegative() {
		return "", &domain.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	return FormatMoney(d), nil
}
