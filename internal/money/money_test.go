package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name  string
		gross Cents
		want  Cents
	}{
		{name: "1000 cents", gross: 1000, want: 50},
		{name: "zero", gross: 0, want: 0},
		{name: "rounds half up", gross: 10, want: 1}, // 0.5 -> 1
		{name: "rounds down below half", gross: 9, want: 0},
		{name: "large amount", gross: 999999, want: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFee(tt.gross))
		})
	}
}

func TestSplit_ReconstructsGross(t *testing.T) {
	for _, gross := range []Cents{0, 1, 9, 10, 11, 50, 99, 100, 1000, 1234567} {
		fee, net := Split(gross)
		assert.Equal(t, gross, fee+net, "fee+net must equal gross for %d", gross)
		assert.GreaterOrEqual(t, net, Cents(0))
	}
}

func TestSplit_Example(t *testing.T) {
	fee, net := Split(1000)
	assert.Equal(t, Cents(50), fee)
	assert.Equal(t, Cents(950), net)
}

func TestMinutesToSeconds(t *testing.T) {
	assert.Equal(t, Seconds(600), MinutesToSeconds(10))
	assert.Equal(t, Seconds(0), MinutesToSeconds(0))
}

func TestEurosToCents(t *testing.T) {
	assert.Equal(t, Cents(2500), EurosToCents(25))
}
