package game_repo

import (
	"context"
	"errors"
	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "games"
	colID     = "id"
	colUserID = "user_id"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetOrCreateGame - возвращает ID игры пользователя.
// Если игры еще нет, создается новая. На user_id стоит уникальный индекс,
// поэтому при гонке вставка проиграет конфликт, а повторный SELECT найдет запись
func (r *repo) GetOrCreateGame(ctx context.Context, userID int) (uuid.UUID, error) {
	gameID, err := r.getGame(ctx, userID)
	if err == nil {
		return gameID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}

	// Записи нет - делаем вставку
	insertQuery := sq.Insert(table).
		Columns(colID, colUserID).
		Values(uuid.New(), userID).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insertQuery.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return r.getGame(ctx, userID)
}

func (r *repo) getGame(ctx context.Context, userID int) (uuid.UUID, error) {
	// Формируем запрос
	query := sq.Select(colID).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var gameID uuid.UUID
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&gameID)
	if err != nil {
		return uuid.Nil, err
	}

	return gameID, nil
}
