package roulette

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"math"
	"math/rand"
)

// SpinSolo - одиночная игра: ставка, бросок и расчет одним вызовом.
func (s *serv) SpinSolo(ctx context.Context, userID int64, category string, bet int64) (*model.RouletteSoloResult, error) {
	if !validCategory(category) {
		return nil, errors.New("unknown bet category")
	}
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}

	var result *model.RouletteSoloResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if u.Balance < bet {
			return model.ErrInsufficientFunds
		}

		if _, err := s.ledgerServ.AddBalance(txCtx, userID, -bet, model.OpBet); err != nil {
			return err
		}

		number := rand.Intn(37)
		res := &model.RouletteSoloResult{Number: number}

		expBase := s.cfg.Roulette.ExpLoss
		if checkWin(category, number) {
			res.Win = true
			expBase = s.categoryExp(category)

			payout := int64(float64(bet) * s.categoryMultiplier(category))
			winBonus, err := s.bonusServ.BusinessBonus(txCtx, userID, "win_multiplier")
			if err != nil {
				return err
			}
			payout += int64(float64(payout) * winBonus)

			balance, err := s.ledgerServ.AddBalance(txCtx, userID, payout, model.OpWin)
			if err != nil {
				return err
			}
			res.Payout = payout
			res.Balance = balance
		} else {
			triggered, err := s.bonusServ.LuckTriggers(txCtx, userID)
			if err != nil {
				return err
			}
			if triggered {
				cashback := int64(math.Round(float64(bet) * 0.2))
				balance, err := s.ledgerServ.AddBalance(txCtx, userID, cashback, model.OpCashback)
				if err != nil {
					return err
				}
				res.Cashback = cashback
				res.Balance = balance
			} else {
				balance, err := s.ledgerServ.GetBalance(txCtx, userID)
				if err != nil {
					return err
				}
				res.Balance = balance
			}
		}

		expMult, err := s.bonusServ.ExpMultiplier(txCtx, userID, bet)
		if err != nil {
			return err
		}
		gain, err := s.ledgerServ.AddExperience(txCtx, userID, expBase*expMult)
		if err != nil {
			return err
		}
		res.ExpGained = gain.Gained
		res.LevelsUp = gain.LevelsUp

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
