package roulette

import (
	"casino_bot/internal/config"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg          *config.GameConfig
	rouletteRepo repository.RouletteRepository
	userRepo     repository.UserRepository
	ledgerServ   service.LedgerService
	bonusServ    service.BonusService
	txManager    trm.Manager
}

func NewRouletteService(
	cfg *config.GameConfig,
	rouletteRepo repository.RouletteRepository,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.RouletteService {
	return &serv{
		cfg:          cfg,
		rouletteRepo: rouletteRepo,
		userRepo:     userRepo,
		ledgerServ:   ledgerServ,
		bonusServ:    bonusServ,
		txManager:    txManager,
	}
}
