package user_repo

import (
	"context"
	"errors"
	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colTotalWagered = "total_wagered"
	colTotalWon     = "total_won"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colBalance).
		Values(user.Name, user.Login, user.Password, user.Balance).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя (ID, Name, Login, Password, Balance) по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colLogin, colPasswordHash, colBalance).
		From(table).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Login, &user.Password, &user.Balance)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetFunds - получение денежного состояния игрока (баланс и суммарные итоги) без блокировки
func (r *repo) GetFunds(ctx context.Context, id int) (*model.PlayerFunds, error) {
	return r.getFunds(ctx, id, false)
}

// GetFundsForUpdate - то же, что GetFunds, но с блокировкой строки (SELECT ... FOR UPDATE).
// Вызывается только внутри транзакции: параллельные спины одного игрока
// выстраиваются на этой блокировке, игроки с разными ID друг друга не ждут
func (r *repo) GetFundsForUpdate(ctx context.Context, id int) (*model.PlayerFunds, error) {
	return r.getFunds(ctx, id, true)
}

func (r *repo) getFunds(ctx context.Context, id int, forUpdate bool) (*model.PlayerFunds, error) {
	// Формируем запрос
	query := sq.Select(colBalance, colTotalWagered, colTotalWon).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var funds model.PlayerFunds
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&funds.Balance, &funds.TotalWagered, &funds.TotalWon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &funds, nil
}

// UpdateFunds - записывает новое денежное состояние игрока
func (r *repo) UpdateFunds(ctx context.Context, id int, funds *model.PlayerFunds) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, funds.Balance).
		Set(colTotalWagered, funds.TotalWagered).
		Set(colTotalWon, funds.TotalWon).
		Where(sq.Eq{colID: id}).
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
