package slot

import (
	"context"
	"errors"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
	statsModel "slots_backend/internal/repository/stats_repo/model"
)

// CheckData возвращает текущее денежное состояние игрока
func (s *serv) CheckData(ctx context.Context) (*model.PlayerFunds, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.userRepo.GetFunds(ctx, userID)
}

// Stats возвращает статистику автомата с момента запуска процесса
func (s *serv) Stats() statsModel.SlotStats {
	return s.statsRepo.State()
}
