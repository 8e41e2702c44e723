package spin_repo

import (
	"context"
	"encoding/json"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "spins"
	colID        = "id"
	colGameID    = "game_id"
	colBetAmount = "bet_amount"
	colPayout    = "payout"
	colGrid      = "grid"
	colWinSet    = "win_set"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateSpin - записывает неизменяемую запись спина в историю.
// Поле и выигрыши хранятся в jsonb, пустой набор выигрышей пишется как NULL
func (r *repo) CreateSpin(ctx context.Context, spin *model.Spin) error {
	gridJSON, err := json.Marshal(spin.Grid)
	if err != nil {
		return err
	}

	var winSetJSON []byte
	if spin.WinSet != nil {
		winSetJSON, err = json.Marshal(spin.WinSet)
		if err != nil {
			return err
		}
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colGameID, colBetAmount, colPayout, colGrid, colWinSet, colCreatedAt).
		Values(spin.ID, spin.GameID, spin.BetAmount, spin.Payout, gridJSON, winSetJSON, spin.Timestamp).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetSpinsByGame - возвращает последние спины игры, новые первыми
func (r *repo) GetSpinsByGame(ctx context.Context, gameID uuid.UUID, limit uint64) ([]model.Spin, error) {
	// Формируем запрос
	query := sq.Select(colID, colGameID, colBetAmount, colPayout, colGrid, colWinSet, colCreatedAt).
		From(table).
		Where(sq.Eq{colGameID: gameID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spins []model.Spin
	for rows.Next() {
		var (
			spin       model.Spin
			gridJSON   []byte
			winSetJSON []byte
		)
		err = rows.Scan(&spin.ID, &spin.GameID, &spin.BetAmount, &spin.Payout, &gridJSON, &winSetJSON, &spin.Timestamp)
		if err != nil {
			return nil, err
		}

		if err = json.Unmarshal(gridJSON, &spin.Grid); err != nil {
			return nil, err
		}
		if winSetJSON != nil {
			if err = json.Unmarshal(winSetJSON, &spin.WinSet); err != nil {
				return nil, err
			}
		}

		spins = append(spins, spin)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return spins, nil
}
