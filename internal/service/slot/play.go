package slot

import (
	"context"
	"errors"
	"fmt"
	"slots_backend/internal/engine"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
	"time"

	"github.com/google/uuid"
)

// Play выполняет один спин: списание ставки, генерация поля, поиск выигрышей,
// начисление выплаты и запись спина в историю - одной транзакцией
func (s *serv) Play(ctx context.Context, req model.SpinRequest) (*model.SpinOutcome, error) {
	// Валидация ставки до каких-либо изменений состояния
	if !req.Bet.IsPositive() || req.Bet.LessThan(s.cfg.MinBet()) {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidBet, req.Bet)
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	catalog := s.cfg.Symbols()

	// Инициализируем структуру для хранения результатов спина
	var res *model.SpinOutcome

	// Начало транзакции, в которой выполняется весь спин.
	// Строка игрока блокируется первой, поэтому параллельные спины одного игрока
	// применяются строго по очереди, а разные игроки друг друга не ждут
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Берем денежное состояние игрока под блокировку строки
		funds, err := s.userRepo.GetFundsForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock user funds: %w", err)
		}

		// Проверка баланса. При нехватке транзакция откатывается целиком
		if funds.Balance.LessThan(req.Bet) {
			return model.ErrInsufficientFunds
		}

		// Списываем ставку
		funds.Balance = funds.Balance.Sub(req.Bet)
		funds.TotalWagered = funds.TotalWagered.Add(req.Bet)

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Генерация поля, поиск выигрышей, расчет выплаты
		grid, err := s.generator.Generate(catalog)
		if err != nil {
			return err
		}

		winSet := engine.Detect(grid)

		payout, err := engine.Payout(winSet, req.Bet, catalog)
		if err != nil {
			return err
		}

		// Начисление выигрыша
		if payout.IsPositive() {
			funds.Balance = funds.Balance.Add(payout)
			funds.TotalWon = funds.TotalWon.Add(payout)
		}

		if err := s.userRepo.UpdateFunds(txCtx, userID, funds); err != nil {
			return fmt.Errorf("failed to update user funds: %w", err)
		}

		// Запись спина в историю игры идет в той же транзакции, что и баланс:
		// либо коммитятся вместе, либо вместе откатываются
		gameID, err := s.gameRepo.GetOrCreateGame(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		spin := &model.Spin{
			ID:        uuid.New(),
			GameID:    gameID,
			BetAmount: req.Bet,
			Payout:    payout,
			Grid:      grid,
			WinSet:    winSet,
			Timestamp: time.Now(),
		}
		if err := s.spinRepo.CreateSpin(txCtx, spin); err != nil {
			return fmt.Errorf("failed to create spin record: %w", err)
		}

		res = &model.SpinOutcome{
			Success:      true,
			SpinID:       spin.ID,
			Grid:         grid,
			WinSet:       winSet,
			Payout:       payout,
			BalanceAfter: funds.Balance,
		}

		return nil
	})
	if err != nil {
		// Нехватка баланса - ожидаемый отказ в спине, а не авария сервиса
		if errors.Is(err, model.ErrInsufficientFunds) {
			return &model.SpinOutcome{
				Success: false,
				Reason:  model.ReasonInsufficientFunds,
			}, nil
		}
		return nil, err
	}

	// Обновляем статистику уже после коммита
	s.statsRepo.UpdateState(req.Bet, res.Payout)

	return res, nil
}
