package blackjack

import (
	"casino_bot/internal/model"
	"context"
)

// Hit - добор карты. Перебор сразу закрывает партию проигрышем,
// любая другая рука остается в игре до команды игрока.
func (s *serv) Hit(ctx context.Context, userID int64) (*model.BlackjackResult, error) {
	var result *model.BlackjackResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sess, err := s.sessionRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}

		if _, err := s.userRepo.GetForUpdate(txCtx, userID); err != nil {
			return err
		}

		sess.PlayerCards = append(sess.PlayerCards, drawCard())

		if score(sess.PlayerCards) > 21 {
			result, err = s.settle(txCtx, sess, model.BlackjackLoss)
			return err
		}

		if err := s.sessionRepo.Update(txCtx, sess); err != nil {
			return err
		}

		balance, err := s.ledgerServ.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}
		result = &model.BlackjackResult{
			Outcome:     model.BlackjackPlaying,
			PlayerCards: sess.PlayerCards,
			DealerCards: sess.DealerCards,
			PlayerScore: score(sess.PlayerCards),
			DealerScore: score(sess.DealerCards),
			Balance:     balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
