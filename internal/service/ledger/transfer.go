package ledger

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Transfer - перевод монет между игроками. Оба счета блокируются
// в порядке возрастания ID, чтобы встречные переводы не взаимоблокировались.
func (s *serv) Transfer(ctx context.Context, fromID, toID int64, amount int64) error {
	if amount <= 0 {
		return errors.New("transfer amount must be positive")
	}
	if fromID == toID {
		return errors.New("cannot transfer to yourself")
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, fromID, s.cfg.StartingBalance); err != nil {
			return err
		}
		if err := s.userRepo.Create(txCtx, toID, s.cfg.StartingBalance); err != nil {
			return err
		}

		first, second := fromID, toID
		if second < first {
			first, second = second, first
		}
		if _, err := s.userRepo.GetForUpdate(txCtx, first); err != nil {
			return err
		}
		if _, err := s.userRepo.GetForUpdate(txCtx, second); err != nil {
			return err
		}

		if err := s.userRepo.AddBalance(txCtx, fromID, -amount); err != nil {
			return err
		}
		if err := s.userRepo.AddBalance(txCtx, toID, amount); err != nil {
			return err
		}

		now := time.Now()
		err := s.opRepo.Add(txCtx, &model.Operation{
			ID: uuid.New(), UserID: fromID, Delta: -amount,
			Reason: model.OpTransferOut, CreatedAt: now,
		})
		if err != nil {
			return err
		}
		return s.opRepo.Add(txCtx, &model.Operation{
			ID: uuid.New(), UserID: toID, Delta: amount,
			Reason: model.OpTransferIn, CreatedAt: now,
		})
	})
}
