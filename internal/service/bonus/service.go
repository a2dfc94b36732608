package bonus

import (
	"casino_bot/internal/config"
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"casino_bot/internal/service"
	"context"
	"math"
	"math/rand"
)

type serv struct {
	cfg          *config.GameConfig
	talentRepo   repository.TalentRepository
	businessRepo repository.BusinessRepository
}

func NewBonusService(
	cfg *config.GameConfig,
	talentRepo repository.TalentRepository,
	businessRepo repository.BusinessRepository,
) service.BonusService {
	return &serv{
		cfg:          cfg,
		talentRepo:   talentRepo,
		businessRepo: businessRepo,
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// TalentBonus - бонус таланта: уровень на шаг за уровень,
// округление до четырех знаков. Неизвестный талант дает ноль.
func (s *serv) TalentBonus(ctx context.Context, userID int64, talent string) (float64, error) {
	rules, ok := s.cfg.Talents[talent]
	if !ok {
		return 0, nil
	}

	level, err := s.talentRepo.GetLevel(ctx, userID, talent)
	if err != nil {
		return 0, err
	}

	return round4(float64(level) * rules.PerLevel), nil
}

// BusinessBonus - сумма одноименных бонусов всех купленных бизнесов.
func (s *serv) BusinessBonus(ctx context.Context, userID int64, name string) (float64, error) {
	owned, err := s.businessRepo.List(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, ob := range owned {
		b, ok := s.cfg.BusinessByID(ob.BusinessID)
		if !ok {
			// Бизнес убрали из конфига, владение осталось.
			continue
		}
		total += b.Bonuses[name]
	}

	return total, nil
}

// ExpMultiplier - ступень по размеру ставки плюс мастерство
// плюс бизнес-бонус game_mastery.
func (s *serv) ExpMultiplier(ctx context.Context, userID int64, bet int64) (float64, error) {
	mastery, err := s.TalentBonus(ctx, userID, model.TalentMastery)
	if err != nil {
		return 0, err
	}

	business, err := s.BusinessBonus(ctx, userID, "game_mastery")
	if err != nil {
		return 0, err
	}

	return s.cfg.ExpMultiplier(bet) + mastery + business, nil
}

// LuckTriggers - бросок кости удачи: бонус таланта задает шанс
// в процентных пунктах.
func (s *serv) LuckTriggers(ctx context.Context, userID int64) (bool, error) {
	luck, err := s.TalentBonus(ctx, userID, model.TalentLuck)
	if err != nil {
		return false, err
	}
	if luck <= 0 {
		return false, nil
	}

	return float64(rand.Intn(101)) < luck, nil
}
