package mines

import (
	"casino_bot/internal/model"
	"context"
	"errors"
)

// Cashout доступен только после хотя бы одной открытой клетки, иначе
// выплата была бы гарантированно выше ставки.
func (s *serv) Cashout(ctx context.Context, userID int64) (*model.MinesResult, error) {
	var result *model.MinesResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sess, err := s.sessionRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		if sess.SafeOpened() == 0 {
			return errors.New("no cells are opened yet")
		}

		if _, err := s.userRepo.GetForUpdate(txCtx, userID); err != nil {
			return err
		}

		result, err = s.payout(txCtx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// payout выплачивает текущий коэффициент и закрывает игру.
// Вызывается внутри транзакции.
func (s *serv) payout(ctx context.Context, sess *model.MinesSession) (*model.MinesResult, error) {
	mult := multiplier(sess.Mines, sess.SafeOpened())
	payout := int64(float64(sess.Bet) * mult)

	winBonus, err := s.bonusServ.BusinessBonus(ctx, sess.UserID, "win_multiplier")
	if err != nil {
		return nil, err
	}
	payout += int64(float64(payout) * winBonus)

	balance, err := s.ledgerServ.AddBalance(ctx, sess.UserID, payout, model.OpWin)
	if err != nil {
		return nil, err
	}

	res := &model.MinesResult{
		Outcome: model.MinesCashout,
		Payout:  payout,
		Balance: balance,
		Field:   sess.Field,
		Opened:  sess.Opened,
	}

	if err := s.awardExp(ctx, sess, s.cfg.Mines.ExpWin, res); err != nil {
		return nil, err
	}

	return res, s.sessionRepo.Delete(ctx, sess.UserID)
}
