package slot

import (
	"math/rand"
	"slots_backend/internal/config"
	"slots_backend/internal/engine"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.SlotConfig
	generator *engine.GridGenerator
	userRepo  repository.UserRepository
	gameRepo  repository.GameRepository
	spinRepo  repository.SpinRepository
	statsRepo repository.SlotStatsRepository
	txManager trm.Manager
}

// NewSlotService Создать сервис слота с геометрией и каталогом из конфигурации
func NewSlotService(
	cfg config.SlotConfig,
	rnd *rand.Rand,
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
	spinRepo repository.SpinRepository,
	statsRepo repository.SlotStatsRepository,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		cfg:       cfg,
		generator: engine.NewGridGenerator(rnd, cfg.ReelCount(), cfg.VisibleRows()),
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		spinRepo:  spinRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
