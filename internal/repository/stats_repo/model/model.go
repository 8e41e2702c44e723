package model

import "github.com/shopspring/decimal"

// Статистика автомата по всем спинам процесса
type SlotStats struct {
	TotalSpins  int64           // Сколько всего спинов сделано
	TotalBet    decimal.Decimal // Сумма всех ставок
	TotalPayout decimal.Decimal // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100
	WindowRTP  float64 // RTP в окне последних спинов
	WindowSize int     // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinSample struct {
	Bet    decimal.Decimal
	Payout decimal.Decimal
}
