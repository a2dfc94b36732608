package ledger

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OpenDeposit - открытие вклада на фиксированный срок. Сумма должна
// совпадать с одним из тарифов, второй вклад одновременно не открыть.
func (s *serv) OpenDeposit(ctx context.Context, userID int64, amount int64) (*model.User, error) {
	tier, ok := s.cfg.DepositTierByAmount(amount)
	if !ok {
		return nil, errors.New("no deposit tier for this amount")
	}

	var result *model.User
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if u.BankBalance > 0 {
			return model.ErrDepositActive
		}

		if err := s.userRepo.AddBalance(txCtx, userID, -amount); err != nil {
			return err
		}

		now := time.Now()
		err = s.opRepo.Add(txCtx, &model.Operation{
			ID: uuid.New(), UserID: userID, Delta: -amount,
			Reason: model.OpDepositOpen, CreatedAt: now,
		})
		if err != nil {
			return err
		}

		until := now.Add(time.Duration(tier.Hours) * time.Hour)
		bank := int64(float64(amount) * tier.Multiplier)
		if err := s.userRepo.SetDeposit(txCtx, userID, bank, &until); err != nil {
			return err
		}

		u, err = s.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		result = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClaimDeposit - ручная выплата созревшего вклада.
func (s *serv) ClaimDeposit(ctx context.Context, userID int64) (int64, error) {
	var payout int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		paid, err := s.payDeposit(txCtx, u, time.Now())
		if err != nil {
			return err
		}
		payout = paid
		return nil
	})
	if err != nil {
		return 0, err
	}

	return payout, nil
}

// SweepDeposits выплачивает все созревшие вклады. Возвращает число выплат.
func (s *serv) SweepDeposits(ctx context.Context, now time.Time) (int, error) {
	due, err := s.userRepo.ListMatureDeposits(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list mature deposits: %w", err)
	}

	paid := 0
	for _, u := range due {
		var payout int64
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			// Перечитываем под блокировкой: вклад могли забрать вручную
			// между выборкой и этой транзакцией.
			locked, err := s.userRepo.GetForUpdate(txCtx, u.ID)
			if err != nil {
				return err
			}

			payout, err = s.payDeposit(txCtx, locked, now)
			if errors.Is(err, model.ErrDepositNotFound) || errors.Is(err, model.ErrDepositNotMature) {
				return nil
			}
			return err
		})
		if err != nil {
			return paid, fmt.Errorf("pay deposit for user %d: %w", u.ID, err)
		}
		if payout > 0 {
			paid++
		}
	}

	return paid, nil
}

// payDeposit выплачивает вклад уже заблокированного пользователя.
func (s *serv) payDeposit(ctx context.Context, u *model.User, now time.Time) (int64, error) {
	if u.BankBalance == 0 {
		return 0, model.ErrDepositNotFound
	}
	if u.DepositUntil != nil && u.DepositUntil.After(now) {
		return 0, model.ErrDepositNotMature
	}

	bonus, err := s.bonusServ.BusinessBonus(ctx, u.ID, "deposit_income_bonus")
	if err != nil {
		return 0, err
	}
	payout := int64(float64(u.BankBalance) * (1 + bonus))

	if err := s.userRepo.AddBalance(ctx, u.ID, payout); err != nil {
		return 0, err
	}
	err = s.opRepo.Add(ctx, &model.Operation{
		ID: uuid.New(), UserID: u.ID, Delta: payout,
		Reason: model.OpDepositPayout, CreatedAt: now,
	})
	if err != nil {
		return 0, err
	}

	if err := s.userRepo.SetDeposit(ctx, u.ID, 0, nil); err != nil {
		return 0, err
	}

	return payout, nil
}
