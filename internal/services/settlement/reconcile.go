package settlement

import "creditcall/internal/money"

// Reconciliation is the outcome of applying a gross payment against a
// business's outstanding debt.
type Reconciliation struct {
	GrossCents         money.Cents
	PlatformFeeCents   money.Cents
	NetToSellerCents   money.Cents
	DebtCoveredCents   money.Cents
	RemainingDebtCents money.Cents
}

// Reconcile computes how much of a gross payment is absorbed by outstanding
// debt versus forwarded to the seller.
//
// With no debt the full net (gross minus the 5% platform fee) is eligible
// for payout. With debt outstanding the payment is applied to debt first and
// nothing is forwarded for this settlement: absorbed = min(gross, debt),
// both amounts in cents.
func Reconcile(gross, debt money.Cents) Reconciliation {
	fee, net := money.Split(gross)
	r := Reconciliation{
		GrossCents:       gross,
		PlatformFeeCents: fee,
	}
	if debt > 0 {
		covered := gross
		if debt < gross {
			covered = debt
		}
		r.DebtCoveredCents = covered
		r.RemainingDebtCents = debt - covered
		return r
	}
	r.NetToSellerCents = net
	return r
}
