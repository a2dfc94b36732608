package ledger

import (
	"casino_bot/internal/config"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg          *config.GameConfig
	userRepo     repository.UserRepository
	opRepo       repository.OperationRepository
	talentRepo   repository.TalentRepository
	businessRepo repository.BusinessRepository
	bonusServ    service.BonusService
	txManager    trm.Manager
}

func NewLedgerService(
	cfg *config.GameConfig,
	userRepo repository.UserRepository,
	opRepo repository.OperationRepository,
	talentRepo repository.TalentRepository,
	businessRepo repository.BusinessRepository,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.LedgerService {
	return &serv{
		cfg:          cfg,
		userRepo:     userRepo,
		opRepo:       opRepo,
		talentRepo:   talentRepo,
		businessRepo: businessRepo,
		bonusServ:    bonusServ,
		txManager:    txManager,
	}
}
