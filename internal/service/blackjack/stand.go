package blackjack

import (
	"casino_bot/internal/model"
	"context"
)

func (s *serv) Stand(ctx context.Context, userID int64) (*model.BlackjackResult, error) {
	var result *model.BlackjackResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sess, err := s.sessionRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}

		if _, err := s.userRepo.GetForUpdate(txCtx, userID); err != nil {
			return err
		}

		result, err = s.playDealer(txCtx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// playDealer доводит руку дилера до 17+ и определяет исход.
// Порядок проверки: блэкджек игрока, перебор дилера, сравнение
// очков, ничья.
func (s *serv) playDealer(ctx context.Context, sess *model.BlackjackSession) (*model.BlackjackResult, error) {
	for score(sess.DealerCards) < 17 {
		sess.DealerCards = append(sess.DealerCards, drawCard())
	}

	player := score(sess.PlayerCards)
	dealer := score(sess.DealerCards)

	var outcome string
	switch {
	case isNatural(sess.PlayerCards):
		outcome = model.BlackjackBlackjack
	case dealer > 21 || player > dealer:
		outcome = model.BlackjackWin
	case player == dealer:
		outcome = model.BlackjackPush
	default:
		outcome = model.BlackjackLoss
	}

	return s.settle(ctx, sess, outcome)
}
