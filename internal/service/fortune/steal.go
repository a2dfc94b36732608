package fortune

import (
	"casino_bot/internal/model"
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Steal - попытка кражи. Попытка тратит перезарядку независимо от
// исхода. Шанс успеха складывается из базы, бизнес-бонуса и ловкости,
// неприкосновенность жертвы уменьшает добычу.
func (s *serv) Steal(ctx context.Context, thiefID, targetID int64) (*model.StealResult, error) {
	if thiefID == targetID {
		return nil, errors.New("cannot steal from yourself")
	}

	var result *model.StealResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledgerServ.GetBalance(txCtx, thiefID); err != nil {
			return err
		}
		if _, err := s.ledgerServ.GetBalance(txCtx, targetID); err != nil {
			return err
		}

		// Блокировка в порядке возрастания ID.
		first, second := thiefID, targetID
		if second < first {
			first, second = second, first
		}
		firstUser, err := s.userRepo.GetForUpdate(txCtx, first)
		if err != nil {
			return err
		}
		secondUser, err := s.userRepo.GetForUpdate(txCtx, second)
		if err != nil {
			return err
		}
		thief, target := firstUser, secondUser
		if thief.ID != thiefID {
			thief, target = secondUser, firstUser
		}

		now := time.Now()
		if left := cooldownLeft(thief.StealUsedAt, s.cfg.Cooldowns.StealMinutes, now); left > 0 {
			return &model.CooldownError{MinutesLeft: left}
		}

		if target.Balance < s.cfg.Steal.MinTargetBalance {
			return errors.New("target is too poor to rob")
		}

		if err := s.userRepo.StampSteal(txCtx, thiefID, now); err != nil {
			return err
		}

		chanceBonus, err := s.bonusServ.BusinessBonus(txCtx, thiefID, "steal_chance")
		if err != nil {
			return err
		}
		agility, err := s.bonusServ.TalentBonus(txCtx, thiefID, model.TalentAgility)
		if err != nil {
			return err
		}
		chance := s.cfg.Steal.BaseChance + chanceBonus + agility*100

		jackpotBonus, err := s.bonusServ.BusinessBonus(txCtx, thiefID, "steal_luck_chance")
		if err != nil {
			return err
		}
		jackpotChance := s.cfg.Steal.JackpotChance + jackpotBonus

		roll := rand.Float64() * 100
		switch {
		case roll < jackpotChance:
			result, err = s.take(txCtx, thief, target,
				int64(float64(target.Balance)*s.cfg.Steal.JackpotPercent), model.StealJackpot)
		case roll < jackpotChance+chance:
			loot := int64(float64(target.Balance) * s.cfg.Steal.StealPercent)
			untouchable, uerr := s.bonusServ.TalentBonus(txCtx, targetID, model.TalentUntouchable)
			if uerr != nil {
				return uerr
			}
			loot -= int64(math.Round(untouchable * float64(loot)))
			result, err = s.take(txCtx, thief, target, loot, model.StealSuccess)
		default:
			fine := int64(float64(thief.Balance) * s.cfg.Steal.FinePercent)
			balance, ferr := s.ledgerServ.AddBalance(txCtx, thiefID, -fine, model.OpStealFine)
			if ferr != nil {
				return ferr
			}
			result = &model.StealResult{
				Outcome:  model.StealFail,
				TargetID: targetID,
				Amount:   fine,
				Balance:  balance,
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// take переносит добычу от жертвы к вору.
func (s *serv) take(ctx context.Context, thief, target *model.User, amount int64, outcome string) (*model.StealResult, error) {
	if amount > target.Balance {
		amount = target.Balance
	}

	if _, err := s.ledgerServ.AddBalance(ctx, target.ID, -amount, model.OpStealLoss); err != nil {
		return nil, err
	}
	balance, err := s.ledgerServ.AddBalance(ctx, thief.ID, amount, model.OpStealTake)
	if err != nil {
		return nil, err
	}

	return &model.StealResult{
		Outcome:  outcome,
		TargetID: target.ID,
		Amount:   amount,
		Balance:  balance,
	}, nil
}
