package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"100.25", 10025},
		{"0.01", 1},
		{"100", 10000},
		{"40.00", 4000},
		{"-5", -500},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := ToMinorUnits(decimal.RequireFromString(c.in))
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToMinorUnitsPrecision(t *testing.T) {
	for _, in := range []string{"0.005", "10.999", "0.0001"} {
		_, err := ToMinorUnits(decimal.RequireFromString(in))
		assert.ErrorIs(t, err, ErrPrecision, in)
	}
}

func TestToMinorUnitsRange(t *testing.T) {
	// One cent above what an int64 of minor units can hold.
	big := decimal.RequireFromString("92233720368547758.08")
	_, err := ToMinorUnits(big)
	assert.ErrorIs(t, err, ErrRange)
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "100.25", FromMinorUnits(10025).String())
	assert.Equal(t, "0.4", FromMinorUnits(40).String())
	assert.True(t, FromMinorUnits(0).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$60.00", Format(6000))
	assert.Equal(t, "$0.05", Format(5))
	assert.Equal(t, "$-1.50", Format(-150))
}
