package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Bet decimal.Decimal
}

// Symbol - символ из каталога: имя и множитель выплаты
type Symbol struct {
	Name             string
	PayoutMultiplier decimal.Decimal
}

// Grid - игровое поле: индекс барабана -> видимые символы сверху вниз
type Grid [][]string

// WinEntry - выигрыш в одном ряду: символ и цепочка подряд идущих индексов барабанов
type WinEntry struct {
	Symbol string `json:"symbol"`
	Run    []int  `json:"run"`
}

// WinSet - выигрыши по номерам рядов (нумерация с единицы).
// Не более одного выигрыша на ряд
type WinSet map[int]WinEntry

// Spin - неизменяемая запись одного спина в истории игры
type Spin struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	BetAmount decimal.Decimal
	Payout    decimal.Decimal
	Grid      Grid
	WinSet    WinSet
	Timestamp time.Time
}

// SpinOutcome - итог обращения к движку.
// При нехватке баланса Success = false и заполнен только Reason
type SpinOutcome struct {
	Success      bool
	Reason       string
	SpinID       uuid.UUID
	Grid         Grid
	WinSet       WinSet
	Payout       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// PlayerFunds - денежное состояние игрока
type PlayerFunds struct {
	Balance      decimal.Decimal
	TotalWagered decimal.Decimal
	TotalWon     decimal.Decimal
}

const ReasonInsufficientFunds = "insufficient_funds"
