package slots

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"context"
	"errors"
	"math/rand"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        *config.GameConfig
	userRepo   repository.UserRepository
	ledgerServ service.LedgerService
	bonusServ  service.BonusService
	txManager  trm.Manager
}

func NewSlotsService(
	cfg *config.GameConfig,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.SlotsService {
	return &serv{
		cfg:        cfg,
		userRepo:   userRepo,
		ledgerServ: ledgerServ,
		bonusServ:  bonusServ,
		txManager:  txManager,
	}
}

// drawSymbol - взвешенный выбор символа. Бонус jackpot_luck добавляет
// веса джекпотному символу.
func drawSymbol(rules config.SlotsRules, jackpotLuck float64) config.SlotSymbol {
	total := 0
	boost := int(jackpotLuck)
	for _, sym := range rules.Symbols {
		total += sym.Weight
		if sym.Symbol == rules.JackpotSymbol {
			total += boost
		}
	}

	roll := rand.Intn(total)
	for _, sym := range rules.Symbols {
		w := sym.Weight
		if sym.Symbol == rules.JackpotSymbol {
			w += boost
		}
		roll -= w
		if roll < 0 {
			return sym
		}
	}
	return rules.Symbols[len(rules.Symbols)-1]
}

// Spin - один прокрут трех барабанов. Платит только полное совпадение.
func (s *serv) Spin(ctx context.Context, userID int64, bet int64) (*model.SlotsResult, error) {
	if bet < s.cfg.MinBet {
		return nil, errors.New("bet is below the minimum")
	}

	var result *model.SlotsResult
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

		if _, err := s.ledgerServ.AddBalance(txCtx, userID, -bet, model.OpBet); err != nil {
			return err
		}

		jackpotLuck, err := s.bonusServ.BusinessBonus(txCtx, userID, "jackpot_luck")
		if err != nil {
			return err
		}

		reels := [3]config.SlotSymbol{
			drawSymbol(s.cfg.Slots, jackpotLuck),
			drawSymbol(s.cfg.Slots, jackpotLuck),
			drawSymbol(s.cfg.Slots, jackpotLuck),
		}

		res := &model.SlotsResult{
			Symbols: [3]string{reels[0].Symbol, reels[1].Symbol, reels[2].Symbol},
		}

		expBase := s.cfg.Slots.ExpLoss
		if reels[0].Symbol == reels[1].Symbol && reels[1].Symbol == reels[2].Symbol {
			res.Win = true
			expBase = s.cfg.Slots.ExpWin

			payout := int64(float64(bet) * reels[0].Payout)
			winBonus, err := s.bonusServ.BusinessBonus(txCtx, userID, "win_multiplier")
			if err != nil {
				return err
			}
			payout += int64(float64(payout) * winBonus)

			balance, err := s.ledgerServ.AddBalance(txCtx, userID, payout, model.OpWin)
			if err != nil {
				return err
			}
			res.Payout = payout
			res.Balance = balance
		} else {
			balance, err := s.ledgerServ.GetBalance(txCtx, userID)
			if err != nil {
				return err
			}
			res.Balance = balance
		}

		expMult, err := s.bonusServ.ExpMultiplier(txCtx, userID, bet)
		if err != nil {
			return err
		}
		gain, err := s.ledgerServ.AddExperience(txCtx, userID, expBase*expMult)
		if err != nil {
			return err
		}
		res.ExpGained = gain.Gained
		res.LevelsUp = gain.LevelsUp

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
