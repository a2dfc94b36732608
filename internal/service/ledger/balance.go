package ledger

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetBalance - баланс пользователя. Первое обращение создает запись
// со стартовым балансом.
func (s *serv) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		balance = u.Balance
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// SetBalance - абсолютная запись баланса (админская операция).
func (s *serv) SetBalance(ctx context.Context, userID int64, amount int64) error {
	if amount < 0 {
		return errors.New("balance cannot be negative")
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		if err := s.userRepo.SetBalance(txCtx, userID, amount); err != nil {
			return err
		}

		return s.opRepo.Add(txCtx, &model.Operation{
			ID:        uuid.New(),
			UserID:    userID,
			Delta:     amount - u.Balance,
			Reason:    model.OpAdminAdjust,
			CreatedAt: time.Now(),
		})
	})
}

// AddBalance - относительное изменение с записью в журнал.
// Возвращает баланс после операции.
func (s *serv) AddBalance(ctx context.Context, userID int64, delta int64, reason string) (int64, error) {
	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		if err := s.userRepo.AddBalance(txCtx, userID, delta); err != nil {
			return err
		}

		err := s.opRepo.Add(txCtx, &model.Operation{
			ID:        uuid.New(),
			UserID:    userID,
			Delta:     delta,
			Reason:    reason,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return err
		}

		u, err := s.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		balance = u.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
