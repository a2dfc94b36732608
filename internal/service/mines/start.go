package mines

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"fmt"
)

func (s *serv) Start(ctx context.Context, userID int64, bet int64, mines int) (*model.MinesResult, error) {
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}
	if mines < s.cfg.Mines.MinMines || mines > s.cfg.Mines.MaxMines {
		return nil, fmt.Errorf("mines count must be between %d and %d",
			s.cfg.Mines.MinMines, s.cfg.Mines.MaxMines)
	}

	var result *model.MinesResult
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

		sess := &model.MinesSession{
			UserID: userID,
			Bet:    bet,
			Mines:  mines,
			Field:  newField(mines),
			Opened: []int{},
		}
		if err := s.sessionRepo.Create(txCtx, sess); err != nil {
			return err
		}

		balance, err := s.ledgerServ.AddBalance(txCtx, userID, -bet, model.OpBet)
		if err != nil {
			return err
		}

		result = &model.MinesResult{
			Outcome:    model.MinesPlaying,
			Multiplier: multiplier(mines, 0),
			Balance:    balance,
			Opened:     []int{},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
