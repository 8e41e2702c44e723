package slot

import (
	"time"

	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Размер ставки, минимум 0.01
}

type SpinResponse struct {
	Success      bool             `json:"success"`                 // false - спин отклонен
	Reason       string           `json:"reason,omitempty"`        // Причина отказа
	SpinID       string           `json:"spin_id,omitempty"`       // ID записи спина
	Grid         [][]string       `json:"grid,omitempty"`          // Поле: барабан -> символы сверху вниз
	WinSet       map[int]WinEntry `json:"win_set,omitempty"`       // Выигрыши по номерам рядов (с 1)
	Payout       decimal.Decimal  `json:"payout"`                  // Общая выплата
	BalanceAfter decimal.Decimal  `json:"balance_after,omitempty"` // Баланс после
}

type WinEntry struct {
	Symbol string `json:"symbol"` // Выигравший символ
	Run    []int  `json:"run"`    // Индексы барабанов цепочки
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"` // Сумма депозита
}

type DepositResponse struct {
	Balance decimal.Decimal `json:"balance"` // Баланс после пополнения
}

type DataResponse struct {
	Balance      decimal.Decimal `json:"balance"`       // Баланс игрока
	TotalWagered decimal.Decimal `json:"total_wagered"` // Всего поставлено
	TotalWon     decimal.Decimal `json:"total_won"`     // Всего выиграно
}

type SpinRecord struct {
	ID        string           `json:"id"`
	BetAmount decimal.Decimal  `json:"bet_amount"`
	Payout    decimal.Decimal  `json:"payout"`
	Grid      [][]string       `json:"grid"`
	WinSet    map[int]WinEntry `json:"win_set,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type HistoryResponse struct {
	Spins []SpinRecord `json:"spins"`
}

type StatsResponse struct {
	TotalSpins  int64           `json:"total_spins"`
	TotalBet    decimal.Decimal `json:"total_bet"`
	TotalPayout decimal.Decimal `json:"total_payout"`
	CurrentRTP  float64         `json:"current_rtp"`
	WindowRTP   float64         `json:"window_rtp"`
	WindowSize  int             `json:"window_size"`
}
