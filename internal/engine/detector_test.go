package engine

import (
	"slots_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows собирает поле из горизонтальных рядов, как их видит игрок
func gridFromRows(rows ...[]string) model.Grid {
	reels := len(rows[0])
	grid := make(model.Grid, reels)
	for r := 0; r < reels; r++ {
		reel := make([]string, len(rows))
		for i := range rows {
			reel[i] = rows[i][r]
		}
		grid[r] = reel
	}
	return grid
}

func TestDetectRunOfThree(t *testing.T) {
	grid := gridFromRows(
		[]string{"Cherry", "Cherry", "Cherry", "Lemon", "Lemon"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond"},
		[]string{"Plum", "Bell", "Seven", "Orange", "Cherry"},
	)

	winSet := Detect(grid)
	require.NotNil(t, winSet)
	require.Len(t, winSet, 1)
	assert.Equal(t, model.WinEntry{Symbol: "Cherry", Run: []int{0, 1, 2}}, winSet[1])
}

func TestDetectBrokenRunIsNotAWin(t *testing.T) {
	// Cherry встречается трижды, но самая длинная цепочка подряд - [2,3]
	grid := gridFromRows(
		[]string{"Cherry", "Lemon", "Cherry", "Cherry", "Lemon"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond"},
		[]string{"Plum", "Bell", "Seven", "Orange", "Cherry"},
	)

	assert.Nil(t, Detect(grid))
}

func TestDetectSingleWinPerRow(t *testing.T) {
	// Оба символа образуют цепочку из трех, записывается только первый слева
	grid := gridFromRows(
		[]string{"Cherry", "Cherry", "Cherry", "Lemon", "Lemon", "Lemon"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond", "Plum"},
		[]string{"Plum", "Bell", "Seven", "Orange", "Bell", "Cherry"},
	)

	winSet := Detect(grid)
	require.NotNil(t, winSet)
	require.Len(t, winSet, 1)
	assert.Equal(t, model.WinEntry{Symbol: "Cherry", Run: []int{0, 1, 2}}, winSet[1])
}

func TestDetectLaterLongerRunWins(t *testing.T) {
	grid := gridFromRows(
		[]string{"Cherry", "Lemon", "Cherry", "Cherry", "Cherry"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond"},
		[]string{"Plum", "Bell", "Seven", "Orange", "Lemon"},
	)

	winSet := Detect(grid)
	require.NotNil(t, winSet)
	assert.Equal(t, model.WinEntry{Symbol: "Cherry", Run: []int{2, 3, 4}}, winSet[1])
}

func TestDetectFullRow(t *testing.T) {
	grid := gridFromRows(
		[]string{"Seven", "Seven", "Seven", "Seven", "Seven"},
		[]string{"Bell", "Plum", "Orange", "Cherry", "Diamond"},
		[]string{"Plum", "Bell", "Cherry", "Orange", "Lemon"},
	)

	winSet := Detect(grid)
	require.NotNil(t, winSet)
	assert.Equal(t, model.WinEntry{Symbol: "Seven", Run: []int{0, 1, 2, 3, 4}}, winSet[1])
}

func TestDetectMultipleRows(t *testing.T) {
	grid := gridFromRows(
		[]string{"Cherry", "Cherry", "Cherry", "Lemon", "Bell"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond"},
		[]string{"Lemon", "Lemon", "Lemon", "Lemon", "Cherry"},
	)

	winSet := Detect(grid)
	require.NotNil(t, winSet)
	require.Len(t, winSet, 2)
	assert.Equal(t, model.WinEntry{Symbol: "Cherry", Run: []int{0, 1, 2}}, winSet[1])
	assert.Equal(t, model.WinEntry{Symbol: "Lemon", Run: []int{0, 1, 2, 3}}, winSet[3])
}

func TestDetectNoWinReturnsNil(t *testing.T) {
	grid := gridFromRows(
		[]string{"Cherry", "Lemon", "Orange", "Plum", "Bell"},
		[]string{"Bell", "Plum", "Orange", "Seven", "Diamond"},
		[]string{"Plum", "Bell", "Seven", "Orange", "Cherry"},
	)

	assert.Nil(t, Detect(grid))
}

func TestLongestRunKeepsEarliestOnTie(t *testing.T) {
	run := longestRun([]int{0, 1, 2, 4, 5, 6})
	assert.Equal(t, []int{0, 1, 2}, run)
}

func TestSelectRowWinner(t *testing.T) {
	assert.Nil(t, selectRowWinner(nil))

	first := model.WinEntry{Symbol: "Cherry", Run: []int{0, 1, 2}}
	second := model.WinEntry{Symbol: "Lemon", Run: []int{3, 4, 5}}
	winner := selectRowWinner([]model.WinEntry{first, second})
	require.NotNil(t, winner)
	assert.Equal(t, first, *winner)
}
