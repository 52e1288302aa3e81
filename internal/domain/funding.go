package domain

// FundingKind tags the variant of a FundingDescriptor.
type FundingKind string

const (
	// FundingPlaidNew carries a fresh Plaid Link public token to exchange.
	FundingPlaidNew FundingKind = "plaid_new"
	// FundingPlaidStored references a previously linked Plaid item.
	FundingPlaidStored FundingKind = "plaid_stored"
	// FundingManual carries raw bank routing/account numbers.
	FundingManual FundingKind = "manual"
)

// FundingDescriptor is the canonical funding source forwarded to the
// vendor. Exactly one variant's fields are populated, selected by Kind.
type FundingDescriptor struct {
	Kind FundingKind `json:"kind"`

	// plaid_new
	PublicToken string `json:"public_token,omitempty"`

	// plaid_stored
	ItemID    string `json:"item_id,omitempty"`
	AccountID string `json:"account_id,omitempty"`

	// manual
	BankRouting string `json:"bank_routing,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
}
