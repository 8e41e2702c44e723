package slot

import (
	"context"
	"errors"
	"math/rand"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
	"slots_backend/internal/repository/stats_repo"
	"sync"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txManagerStub выполняет юнит-оф-ворк под общим мьютексом - так же, как
// блокировка строки игрока сериализует транзакции спинов в БД
type txManagerStub struct {
	mtx sync.Mutex
}

func (m *txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return fn(ctx)
}

func (m *txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type slotCfgStub struct {
	symbols []model.Symbol
}

func (c *slotCfgStub) ReelCount() int          { return 5 }
func (c *slotCfgStub) VisibleRows() int        { return 3 }
func (c *slotCfgStub) MinBet() decimal.Decimal { return decimal.RequireFromString("0.01") }
func (c *slotCfgStub) Symbols() []model.Symbol { return c.symbols }

type userRepoStub struct {
	funds model.PlayerFunds
}

func (r *userRepoStub) CreateUser(context.Context, *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *userRepoStub) GetUserByLogin(context.Context, string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *userRepoStub) GetFunds(context.Context, int) (*model.PlayerFunds, error) {
	f := r.funds
	return &f, nil
}

func (r *userRepoStub) GetFundsForUpdate(ctx context.Context, id int) (*model.PlayerFunds, error) {
	return r.GetFunds(ctx, id)
}

func (r *userRepoStub) UpdateFunds(_ context.Context, _ int, funds *model.PlayerFunds) error {
	r.funds = *funds
	return nil
}

type gameRepoStub struct {
	gameID uuid.UUID
}

func (r *gameRepoStub) GetOrCreateGame(context.Context, int) (uuid.UUID, error) {
	return r.gameID, nil
}

type spinRepoStub struct {
	spins []model.Spin
}

func (r *spinRepoStub) CreateSpin(_ context.Context, spin *model.Spin) error {
	r.spins = append(r.spins, *spin)
	return nil
}

func (r *spinRepoStub) GetSpinsByGame(context.Context, uuid.UUID, uint64) ([]model.Spin, error) {
	return r.spins, nil
}

func testSymbols() []model.Symbol {
	return []model.Symbol{
		{Name: "Cherry", PayoutMultiplier: decimal.RequireFromString("2.5")},
		{Name: "Lemon", PayoutMultiplier: decimal.RequireFromString("1.5")},
		{Name: "Orange", PayoutMultiplier: decimal.RequireFromString("1.8")},
		{Name: "Plum", PayoutMultiplier: decimal.RequireFromString("2.0")},
		{Name: "Diamond", PayoutMultiplier: decimal.RequireFromString("3.0")},
	}
}

func newTestService(balance string, symbols []model.Symbol) (*serv, *userRepoStub, *spinRepoStub) {
	users := &userRepoStub{
		funds: model.PlayerFunds{
			Balance:      decimal.RequireFromString(balance),
			TotalWagered: decimal.Zero,
			TotalWon:     decimal.Zero,
		},
	}
	spins := &spinRepoStub{}

	s := NewSlotService(
		&slotCfgStub{symbols: symbols},
		rand.New(rand.NewSource(42)),
		users,
		&gameRepoStub{gameID: uuid.New()},
		spins,
		stats_repo.NewSlotStatsRepository(),
		&txManagerStub{},
	)

	return s.(*serv), users, spins
}

func playerCtx() context.Context {
	return middleware.ContextWithUserID(context.Background(), 1)
}

func TestPlayBalanceInvariant(t *testing.T) {
	s, users, spins := newTestService("1000.00", testSymbols())
	bet := decimal.RequireFromString("10.00")

	outcome, err := s.Play(playerCtx(), model.SpinRequest{Bet: bet})
	require.NoError(t, err)
	require.True(t, outcome.Success)

	// balance_after = balance_before - bet + payout, точно
	expected := decimal.RequireFromString("1000.00").Sub(bet).Add(outcome.Payout)
	assert.True(t, outcome.BalanceAfter.Equal(expected), "got %s, want %s", outcome.BalanceAfter, expected)
	assert.True(t, users.funds.Balance.Equal(expected))
	assert.True(t, users.funds.TotalWagered.Equal(bet))
	assert.True(t, users.funds.TotalWon.Equal(outcome.Payout))

	// Спин записан вместе с изменением баланса
	require.Len(t, spins.spins, 1)
	assert.True(t, spins.spins[0].BetAmount.Equal(bet))
	assert.True(t, spins.spins[0].Payout.Equal(outcome.Payout))
	assert.Equal(t, outcome.SpinID, spins.spins[0].ID)
}

func TestPlayInsufficientFundsLeavesStateUntouched(t *testing.T) {
	s, users, spins := newTestService("5.00", testSymbols())

	outcome, err := s.Play(playerCtx(), model.SpinRequest{Bet: decimal.RequireFromString("10.00")})
	require.NoError(t, err)
	require.False(t, outcome.Success)
	assert.Equal(t, model.ReasonInsufficientFunds, outcome.Reason)

	// Ничего не изменилось: ни баланс, ни итоги, ни история
	assert.True(t, users.funds.Balance.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, users.funds.TotalWagered.IsZero())
	assert.True(t, users.funds.TotalWon.IsZero())
	assert.Empty(t, spins.spins)
}

func TestPlayInvalidBet(t *testing.T) {
	s, _, _ := newTestService("1000.00", testSymbols())

	_, err := s.Play(playerCtx(), model.SpinRequest{Bet: decimal.Zero})
	require.ErrorIs(t, err, model.ErrInvalidBet)

	_, err = s.Play(playerCtx(), model.SpinRequest{Bet: decimal.RequireFromString("0.001")})
	require.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestPlayInsufficientSymbolsIsHardError(t *testing.T) {
	s, users, spins := newTestService("1000.00", testSymbols()[:2])

	_, err := s.Play(playerCtx(), model.SpinRequest{Bet: decimal.RequireFromString("10.00")})
	require.ErrorIs(t, err, model.ErrInsufficientSymbols)

	// Ошибка конфигурации не должна трогать баланс
	assert.True(t, users.funds.Balance.Equal(decimal.RequireFromString("1000.00")))
	assert.Empty(t, spins.spins)
}

func TestPlayConcurrentSpins(t *testing.T) {
	const spinsCount = 50

	s, users, spins := newTestService("1000.00", testSymbols())
	bet := decimal.RequireFromString("1.00")

	var wg sync.WaitGroup
	outcomes := make(chan *model.SpinOutcome, spinsCount)
	errs := make(chan error, spinsCount)

	for i := 0; i < spinsCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := s.Play(playerCtx(), model.SpinRequest{Bet: bet})
			if err != nil {
				errs <- err
				return
			}
			outcomes <- outcome
		}()
	}
	wg.Wait()
	close(outcomes)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	totalPayout := decimal.Zero
	for outcome := range outcomes {
		require.True(t, outcome.Success)
		totalPayout = totalPayout.Add(outcome.Payout)
	}

	// Итог эквивалентен какому-то последовательному порядку: ни один спин не потерян
	expected := decimal.RequireFromString("1000.00").
		Sub(bet.Mul(decimal.NewFromInt(spinsCount))).
		Add(totalPayout)
	assert.True(t, users.funds.Balance.Equal(expected), "got %s, want %s", users.funds.Balance, expected)
	assert.Len(t, spins.spins, spinsCount)
	assert.True(t, users.funds.TotalWagered.Equal(bet.Mul(decimal.NewFromInt(spinsCount))))
	assert.True(t, users.funds.TotalWon.Equal(totalPayout))
}

func TestDeposit(t *testing.T) {
	s, users, _ := newTestService("100.00", testSymbols())

	balance, err := s.Deposit(playerCtx(), decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("125.50")))
	assert.True(t, users.funds.Balance.Equal(balance))

	_, err = s.Deposit(playerCtx(), decimal.Zero)
	require.Error(t, err)
}
