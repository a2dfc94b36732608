package roulette

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// SettleDue разыгрывает все раунды, чье время пришло. Раунд и его
// ставки удаляются в одной транзакции с выплатами, поэтому повторный
// запуск по тем же раундам ничего не сделает.
func (s *serv) SettleDue(ctx context.Context, now time.Time) ([]model.RouletteSettlement, error) {
	due, err := s.rouletteRepo.ListDueRounds(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list due rounds: %w", err)
	}

	var settlements []model.RouletteSettlement
	for _, round := range due {
		var settlement *model.RouletteSettlement
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			// Раунд мог разыграть параллельный цикл между выборкой
			// и этой транзакцией.
			_, err := s.rouletteRepo.GetRound(txCtx, round.ChatID)
			if errors.Is(err, model.ErrRoundNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			settlement, err = s.settleRound(txCtx, round.ChatID)
			return err
		})
		if err != nil {
			return settlements, fmt.Errorf("settle round in chat %d: %w", round.ChatID, err)
		}
		if settlement != nil {
			settlements = append(settlements, *settlement)
		}
	}

	return settlements, nil
}

func (s *serv) settleRound(ctx context.Context, chatID int64) (*model.RouletteSettlement, error) {
	bets, err := s.rouletteRepo.ListBets(ctx, chatID)
	if err != nil {
		return nil, err
	}

	number := rand.Intn(37)
	settlement := &model.RouletteSettlement{
		ChatID: chatID,
		Number: number,
	}

	for _, bet := range bets {
		payout := model.RoulettePayout{
			UserID:   bet.UserID,
			Category: bet.Category,
			Amount:   bet.Amount,
		}

		expBase := s.cfg.Roulette.ExpLoss
		if checkWin(bet.Category, number) {
			expBase = s.categoryExp(bet.Category)
			payout.Payout = int64(float64(bet.Amount) * s.categoryMultiplier(bet.Category))
			if _, err := s.ledgerServ.AddBalance(ctx, bet.UserID, payout.Payout, model.OpWin); err != nil {
				return nil, err
			}
		} else {
			triggered, err := s.bonusServ.LuckTriggers(ctx, bet.UserID)
			if err != nil {
				return nil, err
			}
			if triggered {
				payout.Cashback = int64(math.Round(float64(bet.Amount) * 0.2))
				if _, err := s.ledgerServ.AddBalance(ctx, bet.UserID, payout.Cashback, model.OpCashback); err != nil {
					return nil, err
				}
			}
		}

		expMult, err := s.bonusServ.ExpMultiplier(ctx, bet.UserID, bet.Amount)
		if err != nil {
			return nil, err
		}
		if _, err := s.ledgerServ.AddExperience(ctx, bet.UserID, expBase*expMult); err != nil {
			return nil, err
		}

		settlement.Payouts = append(settlement.Payouts, payout)
	}

	if err := s.rouletteRepo.DeleteBets(ctx, chatID); err != nil {
		return nil, err
	}
	if err := s.rouletteRepo.DeleteRound(ctx, chatID); err != nil {
		return nil, err
	}

	return settlement, nil
}
