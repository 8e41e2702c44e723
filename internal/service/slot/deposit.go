package slot

import (
	"context"
	"errors"
	"slots_backend/internal/middleware"

	"github.com/shopspring/decimal"
)

// Deposit пополняет баланс игрока. Возвращает баланс после пополнения
func (s *serv) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("deposit amount must be positive")
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, errors.New("user id not found in context")
	}

	var balance decimal.Decimal

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		funds, err := s.userRepo.GetFundsForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		funds.Balance = funds.Balance.Add(amount)
		if err := s.userRepo.UpdateFunds(txCtx, userID, funds); err != nil {
			return err
		}

		balance = funds.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
