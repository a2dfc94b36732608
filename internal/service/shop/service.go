package shop

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg          *config.GameConfig
	businessRepo repository.BusinessRepository
	talentRepo   repository.TalentRepository
	userRepo     repository.UserRepository
	ledgerServ   service.LedgerService
	bonusServ    service.BonusService
	txManager    trm.Manager
}

func NewShopService(
	cfg *config.GameConfig,
	businessRepo repository.BusinessRepository,
	talentRepo repository.TalentRepository,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.ShopService {
	return &serv{
		cfg:          cfg,
		businessRepo: businessRepo,
		talentRepo:   talentRepo,
		userRepo:     userRepo,
		ledgerServ:   ledgerServ,
		bonusServ:    bonusServ,
		txManager:    txManager,
	}
}

// Buy - покупка бизнеса. Требует уровень игрока и уровень мастерства.
func (s *serv) Buy(ctx context.Context, userID int64, businessID int) (*model.OwnedBusiness, error) {
	biz, ok := s.cfg.BusinessByID(businessID)
	if !ok {
		return nil, fmt.Errorf("unknown business %d", businessID)
	}

	var result *model.OwnedBusiness
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		if s.cfg.LevelFor(u.Experience) < biz.ReqLevel {
			return fmt.Errorf("player level %d required", biz.ReqLevel)
		}

		mastery, err := s.talentRepo.GetLevel(txCtx, userID, model.TalentMastery)
		if err != nil {
			return err
		}
		if mastery < biz.ReqMastery {
			return fmt.Errorf("mastery level %d required", biz.ReqMastery)
		}

		now := time.Now()
		ob := &model.OwnedBusiness{
			UserID:     userID,
			BusinessID: businessID,
			AcquiredAt: now,
			IncomeAt:   now,
		}
		if err := s.businessRepo.Add(txCtx, ob); err != nil {
			return err
		}

		if _, err := s.ledgerServ.AddBalance(txCtx, userID, -biz.Price, model.OpBusinessBuy); err != nil {
			return err
		}

		result = ob
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SweepIncome начисляет пассивный доход за полные прошедшие часы.
// Отметка income_at двигается ровно на выплаченные часы, остаток
// копится до следующего прохода.
func (s *serv) SweepIncome(ctx context.Context, now time.Time) (int, error) {
	due, err := s.businessRepo.ListIncomeDue(ctx, now.Add(-time.Hour))
	if err != nil {
		return 0, fmt.Errorf("list income due: %w", err)
	}

	paid := 0
	for _, ob := range due {
		biz, ok := s.cfg.BusinessByID(ob.BusinessID)
		if !ok {
			continue
		}

		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			if _, err := s.userRepo.GetForUpdate(txCtx, ob.UserID); err != nil {
				return err
			}

			hours := int64(now.Sub(ob.IncomeAt).Hours())
			if hours < 1 {
				return nil
			}

			bonus, err := s.bonusServ.BusinessBonus(txCtx, ob.UserID, "income_multiplier")
			if err != nil {
				return err
			}
			income := int64(float64(biz.Income*hours) * (1 + bonus))

			if _, err := s.ledgerServ.AddBalance(txCtx, ob.UserID, income, model.OpPassiveIncome); err != nil {
				return err
			}

			to := ob.IncomeAt.Add(time.Duration(hours) * time.Hour)
			return s.businessRepo.AdvanceIncome(txCtx, ob.UserID, ob.BusinessID, to)
		})
		if err != nil {
			return paid, fmt.Errorf("pay income for user %d business %d: %w", ob.UserID, ob.BusinessID, err)
		}
		paid++
	}

	return paid, nil
}
