package settlement

import (
	"testing"

	"creditcall/internal/money"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name          string
		gross         money.Cents
		debt          money.Cents
		wantFee       money.Cents
		wantNet       money.Cents
		wantCovered   money.Cents
		wantRemaining money.Cents
	}{
		{
			name:    "no debt forwards net",
			gross:   1000,
			debt:    0,
			wantFee: 50,
			wantNet: 950,
		},
		{
			name:          "debt exceeds gross absorbs everything",
			gross:         1000,
			debt:          5000,
			wantFee:       50,
			wantNet:       0,
			wantCovered:   1000,
			wantRemaining: 4000,
		},
		{
			name:        "debt below gross is cleared",
			gross:       1000,
			debt:        300,
			wantFee:     50,
			wantNet:     0,
			wantCovered: 300,
		},
		{
			name:        "debt equal to gross",
			gross:       1000,
			debt:        1000,
			wantFee:     50,
			wantNet:     0,
			wantCovered: 1000,
		},
		{
			name:  "zero gross",
			gross: 0,
			debt:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Reconcile(tt.gross, tt.debt)
			assert.Equal(t, tt.gross, rec.GrossCents)
			assert.Equal(t, tt.wantFee, rec.PlatformFeeCents)
			assert.Equal(t, tt.wantNet, rec.NetToSellerCents)
			assert.Equal(t, tt.wantCovered, rec.DebtCoveredCents)
			assert.Equal(t, tt.wantRemaining, rec.RemainingDebtCents)
		})
	}
}

func TestReconcile_CoveredNeverExceedsEitherSide(t *testing.T) {
	for _, gross := range []money.Cents{1, 50, 999, 1000, 123456} {
		for _, debt := range []money.Cents{0, 1, 500, 1000, 99999} {
			rec := Reconcile(gross, debt)
			assert.LessOrEqual(t, rec.DebtCoveredCents, gross)
			assert.LessOrEqual(t, rec.DebtCoveredCents, debt)
			assert.Equal(t, debt-rec.DebtCoveredCents, rec.RemainingDebtCents)
			if rec.DebtCoveredCents > 0 {
				assert.Zero(t, rec.NetToSellerCents, "nothing forwarded while debt is absorbed")
			}
		}
	}
}
