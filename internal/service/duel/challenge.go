package duel

import (
	"casino_bot/internal/model"
	"context"
	"errors"
)

// Challenge - вызов на дуэль. Балансы проверяются сразу, но ставка
// не списывается до завершения дуэли.
func (s *serv) Challenge(ctx context.Context, chatID, initiatorID, targetID int64, bet int64) (*model.Duel, error) {
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}
	if initiatorID == targetID {
		return nil, errors.New("cannot duel yourself")
	}

	var result *model.Duel
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, initiatorID); err != nil {
			return err
		}
		if _, err := s.ledgerServ.GetBalance(txCtx, targetID); err != nil {
			return err
		}

		// Каждый участник может состоять только в одной дуэли.
		for _, id := range []int64{initiatorID, targetID} {
			_, err := s.duelRepo.GetByUser(txCtx, id)
			if err == nil {
				return model.ErrActiveSessionExists
			}
			if !errors.Is(err, model.ErrSessionNotFound) {
				return err
			}
		}

		initiator, target, err := s.lockPair(txCtx, initiatorID, targetID)
		if err != nil {
			return err
		}
		if initiator.Balance < bet || target.Balance < bet {
			return model.ErrInsufficientFunds
		}

		d := &model.Duel{
			ChatID:      chatID,
			InitiatorID: initiatorID,
			TargetID:    targetID,
			Bet:         bet,
			Rounds:      s.cfg.Duel.DefaultRounds,
			Move:        model.DuelMoveNone,
		}
		if err := s.duelRepo.Create(txCtx, d); err != nil {
			return err
		}

		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
