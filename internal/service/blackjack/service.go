package blackjack

import (
	"casino_bot/internal/config"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         *config.GameConfig
	sessionRepo repository.BlackjackRepository
	userRepo    repository.UserRepository
	ledgerServ  service.LedgerService
	bonusServ   service.BonusService
	txManager   trm.Manager
}

func NewBlackjackService(
	cfg *config.GameConfig,
	sessionRepo repository.BlackjackRepository,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.BlackjackService {
	return &serv{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		ledgerServ:  ledgerServ,
		bonusServ:   bonusServ,
		txManager:   txManager,
	}
}
