package bonus

import (
	"context"
	"testing"
	"time"

	"casino_bot/internal/config"
	"casino_bot/internal/model"
)

type fakeTalents struct {
	levels map[string]int
}

func (f *fakeTalents) List(context.Context, int64) ([]model.Talent, error) { return nil, nil }

func (f *fakeTalents) GetLevel(_ context.Context, _ int64, name string) (int, error) {
	return f.levels[name], nil
}

func (f *fakeTalents) SetLevel(_ context.Context, _ int64, name string, level int) error {
	f.levels[name] = level
	return nil
}

type fakeBusinesses struct {
	owned []model.OwnedBusiness
}

func (f *fakeBusinesses) List(context.Context, int64) ([]model.OwnedBusiness, error) {
	return f.owned, nil
}

func (f *fakeBusinesses) Add(context.Context, *model.OwnedBusiness) error { return nil }

func (f *fakeBusinesses) ListIncomeDue(context.Context, time.Time) ([]model.OwnedBusiness, error) {
	return nil, nil
}

func (f *fakeBusinesses) AdvanceIncome(context.Context, int64, int, time.Time) error { return nil }

func testConfig() *config.GameConfig {
	return &config.GameConfig{
		ExpTiers: []config.ExpTier{
			{Bet: 1000, Multiplier: 1.5},
		},
		Talents: map[string]config.TalentRules{
			model.TalentMastery:     {PerLevel: 0.1},
			model.TalentUntouchable: {PerLevel: 0.05},
		},
		Businesses: []config.Business{
			{ID: 1, Bonuses: map[string]float64{"win_multiplier": 0.1, "game_mastery": 0.2}},
			{ID: 2, Bonuses: map[string]float64{"win_multiplier": 0.15}},
		},
	}
}

func TestTalentBonus(t *testing.T) {
	talents := &fakeTalents{levels: map[string]int{model.TalentMastery: 3}}
	s := NewBonusService(testConfig(), talents, &fakeBusinesses{})
	ctx := context.Background()

	got, err := s.TalentBonus(ctx, 1, model.TalentMastery)
	if err != nil {
		t.Fatalf("TalentBonus: %v", err)
	}
	if got != 0.3 {
		t.Errorf("mastery bonus = %v, want 0.3", got)
	}

	got, err = s.TalentBonus(ctx, 1, model.TalentUntouchable)
	if err != nil {
		t.Fatalf("TalentBonus: %v", err)
	}
	if got != 0 {
		t.Errorf("unleveled talent bonus = %v, want 0", got)
	}

	got, err = s.TalentBonus(ctx, 1, "nonexistent")
	if err != nil {
		t.Fatalf("TalentBonus: %v", err)
	}
	if got != 0 {
		t.Errorf("unknown talent bonus = %v, want 0", got)
	}
}

func TestBusinessBonusSums(t *testing.T) {
	businesses := &fakeBusinesses{owned: []model.OwnedBusiness{
		{UserID: 1, BusinessID: 1},
		{UserID: 1, BusinessID: 2},
		{UserID: 1, BusinessID: 99}, // бизнеса больше нет в конфиге
	}}
	s := NewBonusService(testConfig(), &fakeTalents{levels: map[string]int{}}, businesses)

	got, err := s.BusinessBonus(context.Background(), 1, "win_multiplier")
	if err != nil {
		t.Fatalf("BusinessBonus: %v", err)
	}
	if got != 0.25 {
		t.Errorf("win bonus = %v, want 0.25", got)
	}
}

func TestExpMultiplierCombines(t *testing.T) {
	talents := &fakeTalents{levels: map[string]int{model.TalentMastery: 2}}
	businesses := &fakeBusinesses{owned: []model.OwnedBusiness{{UserID: 1, BusinessID: 1}}}
	s := NewBonusService(testConfig(), talents, businesses)

	// Ступень 1.5 + мастерство 0.2 + бизнес 0.2.
	got, err := s.ExpMultiplier(context.Background(), 1, 1000)
	if err != nil {
		t.Fatalf("ExpMultiplier: %v", err)
	}
	if got != 1.9 {
		t.Errorf("exp multiplier = %v, want 1.9", got)
	}
}

func TestLuckTriggersWithoutTalent(t *testing.T) {
	s := NewBonusService(testConfig(), &fakeTalents{levels: map[string]int{}}, &fakeBusinesses{})

	triggered, err := s.LuckTriggers(context.Background(), 1)
	if err != nil {
		t.Fatalf("LuckTriggers: %v", err)
	}
	if triggered {
		t.Error("luck must never trigger at level 0")
	}
}
