package mines

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"math"
)

// Reveal - открытие клетки. Мина закрывает игру проигрышем, открытие
// последней безопасной клетки выплачивает автоматически.
func (s *serv) Reveal(ctx context.Context, userID int64, cell int) (*model.MinesResult, error) {
	if cell < 0 || cell >= model.MinesFieldSize {
		return nil, errors.New("cell is out of the field")
	}

	var result *model.MinesResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sess, err := s.sessionRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		// Повторное открытие той же клетки ничего не меняет.
		if isOpened(sess.Opened, cell) {
			balance, err := s.ledgerServ.GetBalance(txCtx, userID)
			if err != nil {
				return err
			}
			result = &model.MinesResult{
				Outcome:    model.MinesPlaying,
				Multiplier: multiplier(sess.Mines, sess.SafeOpened()),
				Balance:    balance,
				Opened:     sess.Opened,
			}
			return nil
		}

		if _, err := s.userRepo.GetForUpdate(txCtx, userID); err != nil {
			return err
		}

		if sess.Field[cell] == 0 {
			result, err = s.lose(txCtx, sess)
			return err
		}

		sess.Opened = append(sess.Opened, cell)
		if sess.SafeOpened() == sess.SafeTotal() {
			result, err = s.payout(txCtx, sess)
			return err
		}

		if err := s.sessionRepo.Update(txCtx, sess); err != nil {
			return err
		}

		balance, err := s.ledgerServ.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}
		result = &model.MinesResult{
			Outcome:    model.MinesPlaying,
			Multiplier: multiplier(sess.Mines, sess.SafeOpened()),
			Balance:    balance,
			Opened:     sess.Opened,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lose закрывает проигранную игру. Вызывается внутри транзакции.
func (s *serv) lose(ctx context.Context, sess *model.MinesSession) (*model.MinesResult, error) {
	res := &model.MinesResult{
		Outcome: model.MinesLoss,
		Field:   sess.Field,
		Opened:  sess.Opened,
	}

	triggered, err := s.bonusServ.LuckTriggers(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if triggered {
		cashback := int64(math.Round(float64(sess.Bet) * 0.2))
		balance, err := s.ledgerServ.AddBalance(ctx, sess.UserID, cashback, model.OpCashback)
		if err != nil {
			return nil, err
		}
		res.Cashback = cashback
		res.Balance = balance
	} else {
		balance, err := s.ledgerServ.GetBalance(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		res.Balance = balance
	}

	if err := s.awardExp(ctx, sess, s.cfg.Mines.ExpLoss, res); err != nil {
		return nil, err
	}

	return res, s.sessionRepo.Delete(ctx, sess.UserID)
}

// awardExp - опыт за игру: коэффициент поля, множитель ставки,
// фактор режима и фактор исхода.
func (s *serv) awardExp(ctx context.Context, sess *model.MinesSession, outcomeFactor float64, res *model.MinesResult) error {
	expMult, err := s.bonusServ.ExpMultiplier(ctx, sess.UserID, sess.Bet)
	if err != nil {
		return err
	}

	mult := multiplier(sess.Mines, sess.SafeOpened())
	gain, err := s.ledgerServ.AddExperience(ctx, sess.UserID,
		mult*expMult*s.cfg.Mines.ExpFactor*outcomeFactor)
	if err != nil {
		return err
	}

	res.Multiplier = mult
	res.ExpGained = gain.Gained
	res.LevelsUp = gain.LevelsUp
	return nil
}
