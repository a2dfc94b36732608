package duel

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
)

// ChooseGame - выбор мини-игры. Выбирает инициатор, пока не сделан
// ни один бросок.
func (s *serv) ChooseGame(ctx context.Context, userID int64, game string) (*model.Duel, error) {
	if _, ok := s.cfg.Duel.Games[game]; !ok {
		return nil, fmt.Errorf("unknown duel game %q", game)
	}

	var result *model.Duel
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		d, err := s.duelRepo.GetByUser(txCtx, userID)
		if err != nil {
			return err
		}
		if userID != d.InitiatorID {
			return model.ErrNotYourTurn
		}
		if d.CurrentRound != 0 || d.Move != model.DuelMoveNone {
			return errors.New("duel is already in progress")
		}

		d.Game = game
		if err := s.duelRepo.Update(txCtx, d); err != nil {
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

// ChooseRounds - число раундов. Выбирает инициатор до первого броска.
func (s *serv) ChooseRounds(ctx context.Context, userID int64, rounds int) (*model.Duel, error) {
	if rounds < s.cfg.Duel.MinRounds || rounds > s.cfg.Duel.MaxRounds {
		return nil, fmt.Errorf("rounds must be between %d and %d",
			s.cfg.Duel.MinRounds, s.cfg.Duel.MaxRounds)
	}

	var result *model.Duel
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		d, err := s.duelRepo.GetByUser(txCtx, userID)
		if err != nil {
			return err
		}
		if userID != d.InitiatorID {
			return model.ErrNotYourTurn
		}
		if d.CurrentRound != 0 || d.Move != model.DuelMoveNone {
			return errors.New("duel is already in progress")
		}

		d.Rounds = rounds
		if err := s.duelRepo.Update(txCtx, d); err != nil {
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

// Decline - отказ вызванного от дуэли. Возможен только до его
// первого броска.
func (s *serv) Decline(ctx context.Context, userID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		d, err := s.duelRepo.GetByUser(txCtx, userID)
		if err != nil {
			return err
		}
		if userID != d.TargetID {
			return model.ErrNotYourTurn
		}
		if d.CurrentRound != 0 || d.Move != model.DuelMoveNone {
			return errors.New("duel is already in progress")
		}

		return s.duelRepo.Delete(txCtx, d.InitiatorID, d.TargetID)
	})
}
