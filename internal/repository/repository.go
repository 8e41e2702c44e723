package repository

import (
	"context"
	"slots_backend/internal/model"
	statsModel "slots_backend/internal/repository/stats_repo/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetFunds(ctx context.Context, id int) (*model.PlayerFunds, error)
	// GetFundsForUpdate берет блокировку строки игрока до конца текущей транзакции
	GetFundsForUpdate(ctx context.Context, id int) (*model.PlayerFunds, error)
	UpdateFunds(ctx context.Context, id int, funds *model.PlayerFunds) error
}

type GameRepository interface {
	GetOrCreateGame(ctx context.Context, userID int) (uuid.UUID, error)
}

type SpinRepository interface {
	CreateSpin(ctx context.Context, spin *model.Spin) error
	GetSpinsByGame(ctx context.Context, gameID uuid.UUID, limit uint64) ([]model.Spin, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type SlotStatsRepository interface {
	UpdateState(bet, payout decimal.Decimal)
	State() statsModel.SlotStats
}
