package ledger

import (
	"casino_bot/internal/model"
	"context"
	"fmt"
	"math"
)

// round1 - опыт всегда хранится с одним знаком после запятой.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// GetExperience - опыт и уровень. Уровень пересчитывается лениво:
// если сохраненный разошелся с таблицей, он тут же чинится.
func (s *serv) GetExperience(ctx context.Context, userID int64) (float64, int, error) {
	var (
		exp   float64
		level int
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}

		exp = u.Experience
		level = s.cfg.LevelFor(u.Experience)
		if level != u.Level {
			return s.userRepo.SetExperience(txCtx, userID, u.Experience, level)
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("get experience: %w", err)
	}

	return exp, level, nil
}

// AddExperience начисляет опыт и возвращает итог вместе с числом
// полученных уровней.
func (s *serv) AddExperience(ctx context.Context, userID int64, delta float64) (*model.ExpGain, error) {
	var gain model.ExpGain
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, userID, s.cfg.StartingBalance); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		oldLevel := s.cfg.LevelFor(u.Experience)
		newExp := round1(u.Experience + delta)
		if newExp < 0 {
			newExp = 0
		}
		newLevel := s.cfg.LevelFor(newExp)

		if err := s.userRepo.SetExperience(txCtx, userID, newExp, newLevel); err != nil {
			return err
		}

		gain = model.ExpGain{
			Gained:     round1(delta),
			Experience: newExp,
			Level:      newLevel,
			LevelsUp:   newLevel - oldLevel,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}

	return &gain, nil
}
