package duel

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        *config.GameConfig
	duelRepo   repository.DuelRepository
	userRepo   repository.UserRepository
	ledgerServ service.LedgerService
	txManager  trm.Manager
}

func NewDuelService(
	cfg *config.GameConfig,
	duelRepo repository.DuelRepository,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	txManager trm.Manager,
) service.DuelService {
	return &serv{
		cfg:        cfg,
		duelRepo:   duelRepo,
		userRepo:   userRepo,
		ledgerServ: ledgerServ,
		txManager:  txManager,
	}
}

// lockPair блокирует обоих участников в порядке возрастания ID,
// чтобы параллельные дуэли не взаимоблокировались. Возвращает
// пользователей в порядке аргументов.
func (s *serv) lockPair(ctx context.Context, a, b int64) (*model.User, *model.User, error) {
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	firstUser, err := s.userRepo.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondUser, err := s.userRepo.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if first == a {
		return firstUser, secondUser, nil
	}
	return secondUser, firstUser, nil
}
