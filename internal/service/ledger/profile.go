package ledger

import (
	"casino_bot/internal/model"
	"context"
	"fmt"
)

func (s *serv) Profile(ctx context.Context, userID int64) (*model.Profile, error) {
	var profile model.Profile
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		u.Level = s.cfg.LevelFor(u.Experience)

		talents, err := s.talentRepo.List(txCtx, userID)
		if err != nil {
			return err
		}

		businesses, err := s.businessRepo.List(txCtx, userID)
		if err != nil {
			return err
		}

		profile = model.Profile{
			User:       *u,
			Talents:    talents,
			Businesses: businesses,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	return &profile, nil
}

func (s *serv) History(ctx context.Context, userID int64, limit uint64) ([]model.Operation, error) {
	return s.opRepo.ListByUser(ctx, userID, limit)
}
