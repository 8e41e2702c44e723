package engine

import (
	"math/rand"
	"slots_backend/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(names ...string) []model.Symbol {
	catalog := make([]model.Symbol, len(names))
	for i, name := range names {
		catalog[i] = model.Symbol{
			Name:             name,
			PayoutMultiplier: decimal.NewFromInt(1),
		}
	}
	return catalog
}

func TestGenerateShape(t *testing.T) {
	gen := NewGridGenerator(rand.New(rand.NewSource(1)), DefaultReelCount, DefaultVisibleRows)
	catalog := testCatalog("Cherry", "Lemon", "Orange", "Plum", "Bell")

	for i := 0; i < 100; i++ {
		grid, err := gen.Generate(catalog)
		require.NoError(t, err)
		require.Len(t, grid, DefaultReelCount)
		for _, reel := range grid {
			assert.Len(t, reel, DefaultVisibleRows)
		}
	}
}

func TestGenerateNoDuplicateWithinReel(t *testing.T) {
	gen := NewGridGenerator(rand.New(rand.NewSource(7)), DefaultReelCount, DefaultVisibleRows)
	catalog := testCatalog("Cherry", "Lemon", "Orange")

	for i := 0; i < 200; i++ {
		grid, err := gen.Generate(catalog)
		require.NoError(t, err)
		for _, reel := range grid {
			seen := make(map[string]bool, len(reel))
			for _, sym := range reel {
				assert.False(t, seen[sym], "symbol %q appears twice within one reel", sym)
				seen[sym] = true
			}
		}
	}
}

func TestGenerateSymbolsFromCatalog(t *testing.T) {
	gen := NewGridGenerator(rand.New(rand.NewSource(3)), DefaultReelCount, DefaultVisibleRows)
	catalog := testCatalog("Cherry", "Lemon", "Orange", "Plum")

	known := make(map[string]bool, len(catalog))
	for _, s := range catalog {
		known[s.Name] = true
	}

	grid, err := gen.Generate(catalog)
	require.NoError(t, err)
	for _, reel := range grid {
		for _, sym := range reel {
			assert.True(t, known[sym])
		}
	}
}

func TestGenerateInsufficientSymbols(t *testing.T) {
	gen := NewGridGenerator(rand.New(rand.NewSource(1)), DefaultReelCount, DefaultVisibleRows)

	_, err := gen.Generate(testCatalog("Cherry", "Lemon"))
	require.ErrorIs(t, err, model.ErrInsufficientSymbols)
}
