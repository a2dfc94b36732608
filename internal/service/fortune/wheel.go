package fortune

import (
	"casino_bot/internal/model"
	"context"
	"time"
)

// SpinWheel - колесо фортуны. Бесплатно, но с перезарядкой: отметка
// времени ставится в той же транзакции, что и выигрыш.
func (s *serv) SpinWheel(ctx context.Context, userID int64) (*model.WheelResult, error) {
	var result *model.WheelResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		if left := cooldownLeft(u.WheelUsedAt, s.cfg.Cooldowns.WheelMinutes, now); left > 0 {
			return &model.CooldownError{MinutesLeft: left}
		}

		prize := pickWheelPrize(s.cfg.Wheel)
		balance, err := s.ledgerServ.AddBalance(txCtx, userID, prize, model.OpWheelPrize)
		if err != nil {
			return err
		}

		if err := s.userRepo.StampWheel(txCtx, userID, now); err != nil {
			return err
		}

		result = &model.WheelResult{Prize: prize, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// OpenCase - кейс с опытом. Та же перезарядка, но наградой идет опыт.
func (s *serv) OpenCase(ctx context.Context, userID int64) (*model.CaseResult, error) {
	var result *model.CaseResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, userID); err != nil {
			return err
		}

		u, err := s.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		if left := cooldownLeft(u.CaseUsedAt, s.cfg.Cooldowns.CaseMinutes, now); left > 0 {
			return &model.CooldownError{MinutesLeft: left}
		}

		gain, err := s.ledgerServ.AddExperience(txCtx, userID, pickCasePrize(s.cfg.Case))
		if err != nil {
			return err
		}

		if err := s.userRepo.StampCase(txCtx, userID, now); err != nil {
			return err
		}

		result = &model.CaseResult{
			ExpGained:  gain.Gained,
			Experience: gain.Experience,
			Level:      gain.Level,
			LevelsUp:   gain.LevelsUp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
