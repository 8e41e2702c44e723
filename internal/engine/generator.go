package engine

import (
	"fmt"
	"math/rand"
	"slots_backend/internal/model"
	"sync"
)

const (
	// DefaultReelCount - количество барабанов
	DefaultReelCount = 5
	// DefaultVisibleRows - количество видимых символов на барабане
	DefaultVisibleRows = 3
)

// GridGenerator генерирует игровое поле по каталогу символов.
// Вся случайность движка живет здесь, за инжектируемым rnd,
// чтобы в тестах можно было подавать детерминированные последовательности
type GridGenerator struct {
	mtx         sync.Mutex
	rnd         *rand.Rand
	reelCount   int
	visibleRows int
}

func NewGridGenerator(rnd *rand.Rand, reelCount, visibleRows int) *GridGenerator {
	return &GridGenerator{
		rnd:         rnd,
		reelCount:   reelCount,
		visibleRows: visibleRows,
	}
}

// Generate генерирует случайное поле.
// Каждый барабан - независимая перестановка всего каталога, из которой берутся
// первые visibleRows символов, поэтому внутри одного барабана символ не повторяется
func (g *GridGenerator) Generate(catalog []model.Symbol) (model.Grid, error) {
	distinct := make(map[string]struct{}, len(catalog))
	for _, s := range catalog {
		distinct[s.Name] = struct{}{}
	}
	if len(distinct) < g.visibleRows {
		return nil, fmt.Errorf("%w: have %d, need %d", model.ErrInsufficientSymbols, len(distinct), g.visibleRows)
	}

	// rand.Rand не потокобезопасен, а спины идут параллельно
	g.mtx.Lock()
	defer g.mtx.Unlock()

	grid := make(model.Grid, g.reelCount)
	for r := 0; r < g.reelCount; r++ {
		perm := g.rnd.Perm(len(catalog))
		reel := make([]string, g.visibleRows)
		for i := 0; i < g.visibleRows; i++ {
			reel[i] = catalog[perm[i]].Name
		}
		grid[r] = reel
	}

	return grid, nil
}
