package converter

import (
	dto "slots_backend/internal/api/dto/slot"
	"slots_backend/internal/model"
	statsModel "slots_backend/internal/repository/stats_repo/model"
)

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Bet: req.Bet,
	}
}

func ToSpinResponse(outcome model.SpinOutcome) dto.SpinResponse {
	resp := dto.SpinResponse{
		Success: outcome.Success,
		Reason:  outcome.Reason,
		Payout:  outcome.Payout,
	}
	if !outcome.Success {
		return resp
	}

	resp.SpinID = outcome.SpinID.String()
	resp.Grid = outcome.Grid
	resp.WinSet = toWinSet(outcome.WinSet)
	resp.BalanceAfter = outcome.BalanceAfter
	return resp
}

func ToDataResponse(funds model.PlayerFunds) dto.DataResponse {
	return dto.DataResponse{
		Balance:      funds.Balance,
		TotalWagered: funds.TotalWagered,
		TotalWon:     funds.TotalWon,
	}
}

func ToHistoryResponse(spins []model.Spin) dto.HistoryResponse {
	records := make([]dto.SpinRecord, len(spins))
	for i, s := range spins {
		records[i] = dto.SpinRecord{
			ID:        s.ID.String(),
			BetAmount: s.BetAmount,
			Payout:    s.Payout,
			Grid:      s.Grid,
			WinSet:    toWinSet(s.WinSet),
			Timestamp: s.Timestamp,
		}
	}
	return dto.HistoryResponse{Spins: records}
}

func ToStatsResponse(stats statsModel.SlotStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
		WindowRTP:   stats.WindowRTP,
		WindowSize:  stats.WindowSize,
	}
}

func toWinSet(winSet model.WinSet) map[int]dto.WinEntry {
	if winSet == nil {
		return nil
	}
	result := make(map[int]dto.WinEntry, len(winSet))
	for row, win := range winSet {
		result[row] = dto.WinEntry{
			Symbol: win.Symbol,
			Run:    win.Run,
		}
	}
	return result
}
