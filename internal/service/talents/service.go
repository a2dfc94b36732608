package talents

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"context"
	"fmt"
	"math"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        *config.GameConfig
	talentRepo repository.TalentRepository
	userRepo   repository.UserRepository
	ledgerServ service.LedgerService
	txManager  trm.Manager
}

func NewTalentService(
	cfg *config.GameConfig,
	talentRepo repository.TalentRepository,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	txManager trm.Manager,
) service.TalentService {
	return &serv{
		cfg:        cfg,
		talentRepo: talentRepo,
		userRepo:   userRepo,
		ledgerServ: ledgerServ,
		txManager:  txManager,
	}
}

func (s *serv) List(ctx context.Context, userID int64) ([]model.Talent, error) {
	return s.talentRepo.List(ctx, userID)
}

// upgradeCost - цена следующего уровня таланта.
func upgradeCost(rules config.TalentRules, level int) int64 {
	return int64(float64(rules.CostBase) * math.Pow(rules.CostMultiplier, float64(level)))
}

// requiredLevel - требуемый уровень игрока для следующего уровня таланта.
func requiredLevel(rules config.TalentRules, level int) int {
	return rules.ReqLevelBase + int(math.Round(float64(level)*rules.ReqLevelStep+0.1))
}

// Upgrade - прокачка таланта на один уровень.
func (s *serv) Upgrade(ctx context.Context, userID int64, name string) (*model.Talent, error) {
	rules, ok := s.cfg.Talents[name]
	if !ok {
		return nil, fmt.Errorf("unknown talent %q", name)
	}

	var result *model.Talent
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		level, err := s.talentRepo.GetLevel(txCtx, userID, name)
		if err != nil {
			return err
		}
		if level >= rules.MaxLevel {
			return fmt.Errorf("talent %q is already at max level", name)
		}

		if required := requiredLevel(rules, level); s.cfg.LevelFor(u.Experience) < required {
			return fmt.Errorf("player level %d required", required)
		}

		cost := upgradeCost(rules, level)
		if _, err := s.ledgerServ.AddBalance(txCtx, userID, -cost, model.OpTalentUpgrade); err != nil {
			return err
		}

		if err := s.talentRepo.SetLevel(txCtx, userID, name, level+1); err != nil {
			return err
		}

		result = &model.Talent{UserID: userID, Name: name, Level: level + 1}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
