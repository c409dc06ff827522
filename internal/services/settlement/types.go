package settlement

import "creditcall/internal/money"

// Settlement outcome statuses.
const (
	StatusSettled          = "settled"
	StatusAlreadyProcessed = "already_processed"
	StatusIgnored          = "ignored"
)

// Event identifier and source tags recorded in the idempotency ledger.
const (
	eventIDPrefix = "stripe:"
	sourcePrefix  = "stripe_"
)

// CheckoutEvent is the validated, typed view of a verified
// checkout.session.completed notification. All fields consumed by the
// pipeline are decoded here before any of them is used.
type CheckoutEvent struct {
	SessionID       string
	PaymentIntentID string
	GrossCents      money.Cents
	BusinessID      string
	PhoneHash       string
}

// Outcome describes a completed (or short-circuited) settlement.
type Outcome struct {
	Status             string      `json:"status"`
	EventID            string      `json:"event_id"`
	GrossCents         money.Cents `json:"gross_cents"`
	PlatformFeeCents   money.Cents `json:"platform_fee_cents"`
	NetToSellerCents   money.Cents `json:"net_to_seller_cents"`
	DebtCoveredCents   money.Cents `json:"debt_covered_cents"`
	RemainingDebtCents money.Cents `json:"remaining_debt_cents"`
	TransferID         string      `json:"transfer_id,omitempty"`
	TransferSkipped    bool        `json:"transfer_skipped,omitempty"`
}

// payloadSnippet is the redacted payload recorded with the idempotency row.
type payloadSnippet struct {
	Type       string `json:"type"`
	Amount     int64  `json:"amount"`
	BusinessID string `json:"company_id"`
	Fee        int64  `json:"fee"`
	Net        int64  `json:"net"`
	DebtBefore int64  `json:"debt_before"`
}
