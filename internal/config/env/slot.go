package env

import (
	"fmt"
	"os"
	"slots_backend/internal/config"
	"slots_backend/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type slotYAML struct {
	Slot struct {
		ReelCount   int    `yaml:"reel_count"`
		VisibleRows int    `yaml:"visible_rows"`
		MinBet      string `yaml:"min_bet"`
		Symbols     []struct {
			Name             string `yaml:"name"`
			PayoutMultiplier string `yaml:"payout_multiplier"`
		} `yaml:"symbols"`
	} `yaml:"slot"`
}

type slotConfig struct {
	reelCount   int
	visibleRows int
	minBet      decimal.Decimal
	symbols     []model.Symbol
}

// NewSlotConfigFromYAML читает геометрию автомата и каталог символов из YAML.
// Денежные величины хранятся в файле строками, чтобы не проходить через float64
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed slotYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	if parsed.Slot.ReelCount <= 0 || parsed.Slot.VisibleRows <= 0 {
		return nil, fmt.Errorf("invalid slot geometry: %dx%d", parsed.Slot.ReelCount, parsed.Slot.VisibleRows)
	}

	minBet, err := decimal.NewFromString(parsed.Slot.MinBet)
	if err != nil {
		return nil, fmt.Errorf("invalid min bet: %w", err)
	}

	symbols := make([]model.Symbol, 0, len(parsed.Slot.Symbols))
	for _, s := range parsed.Slot.Symbols {
		mult, err := decimal.NewFromString(s.PayoutMultiplier)
		if err != nil {
			return nil, fmt.Errorf("invalid payout multiplier for %q: %w", s.Name, err)
		}
		if mult.IsNegative() {
			return nil, fmt.Errorf("negative payout multiplier for %q", s.Name)
		}
		symbols = append(symbols, model.Symbol{
			Name:             s.Name,
			PayoutMultiplier: mult,
		})
	}

	return &slotConfig{
		reelCount:   parsed.Slot.ReelCount,
		visibleRows: parsed.Slot.VisibleRows,
		minBet:      minBet,
		symbols:     symbols,
	}, nil
}

func (cfg *slotConfig) ReelCount() int {
	return cfg.reelCount
}

func (cfg *slotConfig) VisibleRows() int {
	return cfg.visibleRows
}

func (cfg *slotConfig) MinBet() decimal.Decimal {
	return cfg.minBet
}

// Symbols возвращает каталог. Слайс общий, движок читает его и не меняет
func (cfg *slotConfig) Symbols() []model.Symbol {
	return cfg.symbols
}
