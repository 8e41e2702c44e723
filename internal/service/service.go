package service

import (
	"context"
	"slots_backend/internal/model"
	statsModel "slots_backend/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

type SlotService interface {
	Play(ctx context.Context, req model.SpinRequest) (*model.SpinOutcome, error)
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	CheckData(ctx context.Context) (*model.PlayerFunds, error)
	History(ctx context.Context, limit uint64) ([]model.Spin, error)
	Stats() statsModel.SlotStats
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
