package engine

import (
	"fmt"
	"slots_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Payout считает общую выплату по найденным выигрышам.
// Вклад одного ряда: ставка * длина цепочки * множитель символа.
// Арифметика десятичная, без двоичного округления. Для nil-набора возвращает ноль
func Payout(winSet model.WinSet, bet decimal.Decimal, catalog []model.Symbol) (decimal.Decimal, error) {
	total := decimal.Zero
	if winSet == nil {
		return total, nil
	}

	multipliers := make(map[string]decimal.Decimal, len(catalog))
	for _, s := range catalog {
		multipliers[s.Name] = s.PayoutMultiplier
	}

	for _, win := range winSet {
		mult, ok := multipliers[win.Symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %s", model.ErrUnknownSymbol, win.Symbol)
		}
		runLength := decimal.NewFromInt(int64(len(win.Run)))
		total = total.Add(bet.Mul(runLength).Mul(mult))
	}

	return total, nil
}
