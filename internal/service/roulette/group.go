package roulette

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"time"
)

// PlaceGroupBet - ставка в групповой раунд чата. Первая ставка открывает
// раунд, повторная ставка на ту же категорию суммируется. Ставка
// списывается сразу.
func (s *serv) PlaceGroupBet(ctx context.Context, chatID, userID int64, category string, bet int64) (*model.RouletteGroupBet, error) {
	if !validCategory(category) {
		return nil, errors.New("unknown bet category")
	}
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}

	var result *model.RouletteGroupBet
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		now := time.Now()
		newRound := false

		round, err := s.rouletteRepo.GetRound(txCtx, chatID)
		if errors.Is(err, model.ErrRoundNotFound) {
			newRound = true
			start := now.Add(s.cfg.Roulette.GroupDuration())
			err = s.rouletteRepo.CreateRound(txCtx, &model.RouletteRound{
				ChatID:    chatID,
				StartTime: start,
				Deadline:  start.Add(-s.cfg.Roulette.DeadlineOffset()),
			})
			if err != nil {
				return err
			}
			// Перечитываем: при гонке раунд мог открыть кто-то другой.
			round, err = s.rouletteRepo.GetRound(txCtx, chatID)
		}
		if err != nil {
			return err
		}

		if now.After(round.Deadline) {
			return model.ErrBetsClosed
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if u.Balance < bet {
			return model.ErrInsufficientFunds
		}

		balance, err := s.ledgerServ.AddBalance(txCtx, userID, -bet, model.OpBet)
		if err != nil {
			return err
		}

		total, err := s.rouletteRepo.AddBet(txCtx, &model.RouletteBet{
			ChatID:   chatID,
			UserID:   userID,
			Category: category,
			Amount:   bet,
		})
		if err != nil {
			return err
		}

		result = &model.RouletteGroupBet{
			Round:    *round,
			NewRound: newRound,
			Amount:   total,
			Balance:  balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
