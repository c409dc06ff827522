package creators

import (
	"creditcall/internal/models"
	"creditcall/internal/money"
)

// Purchase is a validated payment-completed notification for a creator's
// minutes, forwarded after checkout settles.
type Purchase struct {
	Handle          string
	Minutes         int64
	AmountCents     money.Cents
	StripeSessionID string
	PhoneHash       string
}

// PurchaseResult reports the applied wallet credit.
type PurchaseResult struct {
	CreatorID    string        `json:"creator_id"`
	SecondsAdded money.Seconds `json:"seconds_added"`
}

// SummaryUpdate is a full recompute pushed by the external analytics source
// of truth. It overwrites the wallet rather than incrementing it.
type SummaryUpdate struct {
	Handle             string
	RevenueEuros       float64
	TotalCalls         int64
	TotalMinutes       int64
	AvgDurationSeconds float64
	UniqueCallers      int64
	BalanceMinutes     int64
}

// CreatorData projects a creator's ledger state for read endpoints.
type CreatorData struct {
	Creator      *models.Creator        `json:"creator"`
	Wallet       *models.Wallet         `json:"wallet"`
	Summary      *models.CreatorSummary `json:"summary,omitempty"`
	Transactions []models.Transaction   `json:"transactions"`
}
