package duel

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
)

// Turn - бросок участника. Первым в раунде ходит вызванный, бросок
// инициатора закрывает раунд и двигает счетчик. Значение броска
// прибавляется к счету бросавшего, после последнего раунда больший
// суммарный счет забирает ставку, ничья денег не двигает.
func (s *serv) Turn(ctx context.Context, userID int64, value int) (*model.DuelTurnResult, error) {
	var result *model.DuelTurnResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		d, err := s.duelRepo.GetByUser(txCtx, userID)
		if err != nil {
			return err
		}
		if d.Game == "" {
			return errors.New("duel game is not chosen yet")
		}

		maxValue := s.cfg.Duel.Games[d.Game]
		if value < 1 || value > maxValue {
			return fmt.Errorf("throw value must be between 1 and %d", maxValue)
		}

		// Балансы перепроверяются один раз, перед самым первым броском.
		if d.CurrentRound == 0 && d.Move == model.DuelMoveNone {
			initiator, target, err := s.lockPair(txCtx, d.InitiatorID, d.TargetID)
			if err != nil {
				return err
			}
			if initiator.Balance < d.Bet || target.Balance < d.Bet {
				return model.ErrInsufficientFunds
			}
		}

		if d.Move == model.DuelMoveNone {
			if userID != d.TargetID {
				return model.ErrNotYourTurn
			}
			d.Move = model.DuelMoveTarget
			d.TargetScore += value
			if err := s.duelRepo.Update(txCtx, d); err != nil {
				return err
			}
			result = &model.DuelTurnResult{Duel: *d}
			return nil
		}

		if userID != d.InitiatorID {
			return model.ErrNotYourTurn
		}

		d.InitiatorScore += value
		d.CurrentRound++
		d.Move = model.DuelMoveNone

		if d.CurrentRound < d.Rounds {
			if err := s.duelRepo.Update(txCtx, d); err != nil {
				return err
			}
			result = &model.DuelTurnResult{Duel: *d, RoundDone: true}
			return nil
		}

		result, err = s.finish(txCtx, d)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// finish рассчитывает дуэль и удаляет сессию. Вызывается внутри
// транзакции.
func (s *serv) finish(ctx context.Context, d *model.Duel) (*model.DuelTurnResult, error) {
	result := &model.DuelTurnResult{Duel: *d, RoundDone: true, Finished: true}

	switch {
	case d.InitiatorScore > d.TargetScore:
		result.WinnerID = d.InitiatorID
		result.LoserID = d.TargetID
	case d.TargetScore > d.InitiatorScore:
		result.WinnerID = d.TargetID
		result.LoserID = d.InitiatorID
	default:
		result.Draw = true
	}

	if !result.Draw {
		if _, _, err := s.lockPair(ctx, d.InitiatorID, d.TargetID); err != nil {
			return nil, err
		}
		if _, err := s.ledgerServ.AddBalance(ctx, result.LoserID, -d.Bet, model.OpDuelLoss); err != nil {
			return nil, err
		}
		if _, err := s.ledgerServ.AddBalance(ctx, result.WinnerID, d.Bet, model.OpDuelWin); err != nil {
			return nil, err
		}
	}

	if err := s.duelRepo.Delete(ctx, d.InitiatorID, d.TargetID); err != nil {
		return nil, err
	}

	return result, nil
}
