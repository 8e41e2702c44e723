package stats_repo

import (
	repoModel "slots_backend/internal/repository/stats_repo/model"
	"sync"

	"github.com/shopspring/decimal"
)

// windowSize Размер окна последних спинов для оконного RTP
const windowSize = 500

// Реализация репозитория для хранения статистики автомата.
// Живет в памяти процесса и обновляется уже после коммита транзакции спина
type StatsRepo struct {
	mtx    sync.RWMutex
	stats  repoModel.SlotStats
	window []repoModel.SpinSample
}

// NewSlotStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewSlotStatsRepository() *StatsRepo {
	return &StatsRepo{
		stats: repoModel.SlotStats{
			TotalBet:    decimal.Zero,
			TotalPayout: decimal.Zero,
			WindowSize:  windowSize,
		},
		window: make([]repoModel.SpinSample, 0),
	}
}

// State Получение текущей статистики автомата
// Является геттером для структуры статистики
// Возвращает копию структуры SlotStats
func (r *StatsRepo) State() repoModel.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.stats
}

// UpdateState Обновление статистики автомата после спина
func (r *StatsRepo) UpdateState(bet, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.stats.TotalSpins++
	r.stats.TotalBet = r.stats.TotalBet.Add(bet)
	r.stats.TotalPayout = r.stats.TotalPayout.Add(payout)
	if r.stats.TotalBet.IsPositive() {
		r.stats.CurrentRTP, _ = r.stats.TotalPayout.Div(r.stats.TotalBet).Mul(decimal.NewFromInt(100)).Float64()
	}

	// Добавляем спин в окно
	r.window = append(r.window, repoModel.SpinSample{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.window) > windowSize {
		r.window = r.window[1:]
	}

	// Пересчитываем RTP в окне
	windowBet, windowPayout := decimal.Zero, decimal.Zero
	for _, s := range r.window {
		windowBet = windowBet.Add(s.Bet)
		windowPayout = windowPayout.Add(s.Payout)
	}

	if windowBet.IsPositive() {
		r.stats.WindowRTP, _ = windowPayout.Div(windowBet).Mul(decimal.NewFromInt(100)).Float64()
	} else {
		r.stats.WindowRTP = 0
	}
}
