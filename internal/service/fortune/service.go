package fortune

import (
	"casino_bot/internal/config"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"math"
	"math/rand"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        *config.GameConfig
	userRepo   repository.UserRepository
	ledgerServ service.LedgerService
	bonusServ  service.BonusService
	txManager  trm.Manager
}

func NewFortuneService(
	cfg *config.GameConfig,
	userRepo repository.UserRepository,
	ledgerServ service.LedgerService,
	bonusServ service.BonusService,
	txManager trm.Manager,
) service.FortuneService {
	return &serv{
		cfg:        cfg,
		userRepo:   userRepo,
		ledgerServ: ledgerServ,
		bonusServ:  bonusServ,
		txManager:  txManager,
	}
}

// cooldownLeft - остаток перезарядки в минутах, 0 если функция доступна.
// Неполная минута округляется вверх, чтобы не обещать доступность раньше
// времени.
func cooldownLeft(last *time.Time, minutes int, now time.Time) int {
	if last == nil {
		return 0
	}
	left := last.Add(time.Duration(minutes) * time.Minute).Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Minutes()))
}

func pickWheelPrize(prizes []config.WheelPrize) int64 {
	total := 0
	for _, p := range prizes {
		total += p.Weight
	}

	roll := rand.Intn(total)
	for _, p := range prizes {
		roll -= p.Weight
		if roll < 0 {
			return p.Amount
		}
	}
	return prizes[len(prizes)-1].Amount
}

func pickCasePrize(prizes []config.CasePrize) float64 {
	total := 0
	for _, p := range prizes {
		total += p.Weight
	}

	roll := rand.Intn(total)
	for _, p := range prizes {
		roll -= p.Weight
		if roll < 0 {
			return p.Exp
		}
	}
	return prizes[len(prizes)-1].Exp
}
