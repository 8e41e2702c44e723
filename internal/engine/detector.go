package engine

import (
	"slots_backend/internal/model"
)

// minWinCount - минимальная длина цепочки для выигрыша
const minWinCount = 3

// Detect ищет выигрышные комбинации на поле.
// Возвращает nil, если ни один ряд не выиграл. Результат детерминирован:
// вся случайность остается в генераторе
func Detect(grid model.Grid) model.WinSet {
	wins := make(model.WinSet)

	for i, row := range rowsOf(grid) {
		if win := selectRowWinner(rowCandidates(row)); win != nil {
			wins[i+1] = *win
		}
	}

	if len(wins) == 0 {
		return nil
	}
	return wins
}

// rowsOf транспонирует поле: ряд i собирается из i-го видимого символа
// каждого барабана в порядке барабанов
func rowsOf(grid model.Grid) [][]string {
	if len(grid) == 0 {
		return nil
	}

	rows := make([][]string, len(grid[0]))
	for i := range rows {
		rows[i] = make([]string, len(grid))
		for r := range grid {
			rows[i][r] = grid[r][i]
		}
	}
	return rows
}

// rowCandidates собирает кандидатов на выигрыш в одном ряду.
// Каждый различный символ оценивается один раз, в порядке первого появления
// слева направо: символ должен встретиться минимум minWinCount раз,
// а его самая длинная цепочка подряд идущих индексов - быть не короче minWinCount
func rowCandidates(row []string) []model.WinEntry {
	var candidates []model.WinEntry

	seen := make(map[string]bool, len(row))
	for _, sym := range row {
		if seen[sym] {
			continue
		}
		seen[sym] = true

		var positions []int
		for idx, val := range row {
			if val == sym {
				positions = append(positions, idx)
			}
		}
		if len(positions) < minWinCount {
			continue
		}

		run := longestRun(positions)
		if len(run) >= minWinCount {
			candidates = append(candidates, model.WinEntry{Symbol: sym, Run: run})
		}
	}

	return candidates
}

// longestRun находит самую длинную цепочку подряд идущих индексов.
// При равной длине остается более ранняя цепочка
func longestRun(positions []int) []int {
	length, longest := 1, 1
	start, end := 0, 1

	for i := 0; i < len(positions)-1; i++ {
		if positions[i] == positions[i+1]-1 {
			length++
			if length > longest {
				longest = length
				start = i + 2 - length
				end = i + 2
			}
		} else {
			length = 1
		}
	}

	return positions[start:end]
}

// selectRowWinner - политика "один выигрыш на ряд": из всех кандидатов ряда
// остается первый найденный. Вынесена в отдельную функцию, чтобы политику
// можно было поменять, не трогая сам поиск комбинаций
func selectRowWinner(candidates []model.WinEntry) *model.WinEntry {
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}
