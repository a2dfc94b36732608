package scheduler

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/notify"
	"casino_bot/internal/service"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Scheduler гоняет фоновые циклы: розыгрыш групповой рулетки, выплату
// созревших вкладов и начисление пассивного дохода. Каждый проход
// идемпотентен, ошибки логируются и не останавливают цикл.
type Scheduler struct {
	cfg          config.SchedulerRules
	rouletteServ service.RouletteService
	ledgerServ   service.LedgerService
	shopServ     service.ShopService
	notifier     notify.Notifier
	log          *zap.Logger
}

func New(
	cfg config.SchedulerRules,
	rouletteServ service.RouletteService,
	ledgerServ service.LedgerService,
	shopServ service.ShopService,
	notifier notify.Notifier,
	log *zap.Logger,
) *Scheduler {
	return &Scheduler{
		cfg:          cfg,
		rouletteServ: rouletteServ,
		ledgerServ:   ledgerServ,
		shopServ:     shopServ,
		notifier:     notifier,
		log:          log,
	}
}

// Run запускает циклы и блокируется до отмены контекста.
func (s *Scheduler) Run(ctx context.Context) {
	go s.loop(ctx, "roulette", s.cfg.RouletteSweep(), s.sweepRoulette)
	go s.loop(ctx, "deposits", s.cfg.DepositSweep(), s.sweepDeposits)
	go s.loop(ctx, "income", s.cfg.IncomeSweep(), s.sweepIncome)
	<-ctx.Done()
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("sweep loop started",
		zap.String("sweep", name),
		zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweep loop stopped", zap.String("sweep", name))
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				s.log.Error("sweep failed",
					zap.String("sweep", name),
					zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) sweepRoulette(ctx context.Context) error {
	settlements, err := s.rouletteServ.SettleDue(ctx, time.Now())
	// Уведомления и по частично разыгранным раундам: выплаты уже
	// закоммичены, игроки должны о них узнать.
	for _, st := range settlements {
		s.notifier.Send(st.ChatID, formatSettlement(st))
	}
	return err
}

func (s *Scheduler) sweepDeposits(ctx context.Context) error {
	paid, err := s.ledgerServ.SweepDeposits(ctx, time.Now())
	if paid > 0 {
		s.log.Info("deposits paid", zap.Int("count", paid))
	}
	return err
}

func (s *Scheduler) sweepIncome(ctx context.Context) error {
	paid, err := s.shopServ.SweepIncome(ctx, time.Now())
	if paid > 0 {
		s.log.Info("passive income paid", zap.Int("count", paid))
	}
	return err
}

func formatSettlement(st model.RouletteSettlement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎰 Рулетка: выпало %d!\n", st.Number)

	winners := 0
	for _, p := range st.Payouts {
		if p.Payout > 0 {
			fmt.Fprintf(&b, "💰 Игрок %d выиграл %d (%s)\n", p.UserID, p.Payout, p.Category)
			winners++
		}
	}
	if winners == 0 {
		b.WriteString("Победителей нет, казино забирает все.")
	}

	return b.String()
}
