package blackjack

import (
	"casino_bot/internal/model"
	"context"
	"errors"
)

// Start - новая партия. Ставка списывается сразу. Блэкджек с раздачи
// виден по очкам, но партия не закрывается: игрок все равно делает
// ход, повышенный коэффициент учитывается при расчете.
func (s *serv) Start(ctx context.Context, userID int64, bet int64) (*model.BlackjackResult, error) {
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}

	var result *model.BlackjackResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// GetBalance создает пользователя при первом обращении.
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

		sess := &model.BlackjackSession{
			UserID:      userID,
			Bet:         bet,
			PlayerCards: []string{drawCard(), drawCard()},
			DealerCards: []string{drawCard(), drawCard()},
		}
		if err := s.sessionRepo.Create(txCtx, sess); err != nil {
			return err
		}

		if _, err := s.ledgerServ.AddBalance(txCtx, userID, -bet, model.OpBet); err != nil {
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
