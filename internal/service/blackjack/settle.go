package blackjack

import (
	"casino_bot/internal/model"
	"context"
	"math"
)

// settle закрывает партию: выплата, опыт, удаление сессии.
// Вызывается только внутри транзакции.
func (s *serv) settle(ctx context.Context, sess *model.BlackjackSession, outcome string) (*model.BlackjackResult, error) {
	res := &model.BlackjackResult{
		Outcome:     outcome,
		PlayerCards: sess.PlayerCards,
		DealerCards: sess.DealerCards,
		PlayerScore: score(sess.PlayerCards),
		DealerScore: score(sess.DealerCards),
	}

	var (
		payout  int64
		reason  string
		expBase float64
	)
	switch outcome {
	case model.BlackjackBlackjack:
		payout = int64(float64(sess.Bet) * s.cfg.Blackjack.BlackjackMultiplier)
		reason = model.OpWin
		expBase = s.cfg.Blackjack.ExpBlackjack
	case model.BlackjackWin:
		payout = int64(float64(sess.Bet) * s.cfg.Blackjack.WinMultiplier)
		reason = model.OpWin
		expBase = s.cfg.Blackjack.ExpWin
	case model.BlackjackPush:
		payout = sess.Bet
		reason = model.OpPush
		expBase = s.cfg.Blackjack.ExpPush
	case model.BlackjackLoss:
		expBase = s.cfg.Blackjack.ExpLoss
	}

	// Бизнес-бонус увеличивает только выигрыш, не возврат ставки.
	if outcome == model.BlackjackWin || outcome == model.BlackjackBlackjack {
		winBonus, err := s.bonusServ.BusinessBonus(ctx, sess.UserID, "win_multiplier")
		if err != nil {
			return nil, err
		}
		payout += int64(float64(payout) * winBonus)
	}

	if payout > 0 {
		balance, err := s.ledgerServ.AddBalance(ctx, sess.UserID, payout, reason)
		if err != nil {
			return nil, err
		}
		res.Payout = payout
		res.Balance = balance
	} else {
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
	}

	expMult, err := s.bonusServ.ExpMultiplier(ctx, sess.UserID, sess.Bet)
	if err != nil {
		return nil, err
	}
	gain, err := s.ledgerServ.AddExperience(ctx, sess.UserID, expBase*expMult)
	if err != nil {
		return nil, err
	}
	res.ExpGained = gain.Gained
	res.LevelsUp = gain.LevelsUp

	if err := s.sessionRepo.Delete(ctx, sess.UserID); err != nil {
		return nil, err
	}

	return res, nil
}
