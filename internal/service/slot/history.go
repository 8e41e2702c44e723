package slot

import (
	"context"
	"errors"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
)

// maxHistoryLimit Максимум записей в выдаче истории
const maxHistoryLimit = 50

// History возвращает последние спины игрока, новые первыми
func (s *serv) History(ctx context.Context, limit uint64) ([]model.Spin, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	if limit == 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	gameID, err := s.gameRepo.GetOrCreateGame(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.spinRepo.GetSpinsByGame(ctx, gameID, limit)
}
