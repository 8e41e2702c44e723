package engine

import (
	"slots_backend/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payoutCatalog() []model.Symbol {
	return []model.Symbol{
		{Name: "Cherry", PayoutMultiplier: decimal.RequireFromString("2.5")},
		{Name: "Lemon", PayoutMultiplier: decimal.RequireFromString("1.5")},
		{Name: "Diamond", PayoutMultiplier: decimal.RequireFromString("3.0")},
	}
}

func TestPayoutSingleRow(t *testing.T) {
	winSet := model.WinSet{
		1: {Symbol: "Cherry", Run: []int{0, 1, 2}},
	}

	payout, err := Payout(winSet, decimal.RequireFromString("10.00"), payoutCatalog())
	require.NoError(t, err)

	// 10.00 * 3 * 2.5 = 75.00
	assert.True(t, payout.Equal(decimal.RequireFromString("75.00")), "got %s", payout)
}

func TestPayoutSumsAllRows(t *testing.T) {
	winSet := model.WinSet{
		1: {Symbol: "Cherry", Run: []int{0, 1, 2}},
		3: {Symbol: "Lemon", Run: []int{1, 2, 3, 4}},
	}

	payout, err := Payout(winSet, decimal.RequireFromString("10.00"), payoutCatalog())
	require.NoError(t, err)

	// 10.00*3*2.5 + 10.00*4*1.5 = 75.00 + 60.00 = 135.00
	assert.True(t, payout.Equal(decimal.RequireFromString("135.00")), "got %s", payout)
}

func TestPayoutExactDecimalArithmetic(t *testing.T) {
	winSet := model.WinSet{
		1: {Symbol: "Cherry", Run: []int{0, 1, 2}},
	}
	bet := decimal.RequireFromString("0.03")

	// 0.03 * 3 * 2.5 = 0.225, без дрейфа двоичного округления
	payout, err := Payout(winSet, bet, payoutCatalog())
	require.NoError(t, err)
	assert.True(t, payout.Equal(decimal.RequireFromString("0.225")), "got %s", payout)
}

func TestPayoutNilWinSet(t *testing.T) {
	payout, err := Payout(nil, decimal.RequireFromString("10.00"), payoutCatalog())
	require.NoError(t, err)
	assert.True(t, payout.IsZero())
}

func TestPayoutUnknownSymbol(t *testing.T) {
	winSet := model.WinSet{
		1: {Symbol: "Ghost", Run: []int{0, 1, 2}},
	}

	_, err := Payout(winSet, decimal.RequireFromString("10.00"), payoutCatalog())
	require.ErrorIs(t, err, model.ErrUnknownSymbol)
}
