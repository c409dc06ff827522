// Package money provides fixed-point arithmetic for balances.
// All balance math is done on integer cents and integer seconds;
// floating point never touches a stored amount.
package money

import "math"

// Cents is a monetary amount in integer minor units (euro cents).
type Cents int64

// Seconds is a call-time balance in whole seconds.
type Seconds int64

// PlatformFeeRate is the share of gross retained by the platform.
const PlatformFeeRate = 0.05

// PlatformFee returns the platform fee for a gross amount,
// rounded half-up to the nearest cent.
func PlatformFee(gross Cents) Cents {
	return Cents(math.Round(float64(gross) * PlatformFeeRate))
}

// Split divides a gross amount into platform fee and net-to-seller.
// The two parts always reconstruct gross exactly.
func Split(gross Cents) (fee, net Cents) {
	fee = PlatformFee(gross)
	return fee, gross - fee
}

// MinutesToSeconds converts purchased minutes into wallet seconds.
func MinutesToSeconds(minutes int64) Seconds {
	return Seconds(minutes * 60)
}

// EurosToCents converts a whole-euro amount into cents.
func EurosToCents(euros int64) Cents {
	return Cents(euros * 100)
}

// EuroFloatToCents converts a fractional euro amount reported by an external
// analytics source into cents, rounding half-up. This is the only place a
// float crosses into a stored amount.
func EuroFloatToCents(euros float64) Cents {
	return Cents(math.Round(euros * 100))
}
