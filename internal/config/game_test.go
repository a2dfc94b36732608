package config

import "testing"

func testGameConfig() *GameConfig {
	return &GameConfig{
		Levels: []LevelStep{
			{Level: 1, Exp: 0},
			{Level: 2, Exp: 10},
			{Level: 3, Exp: 30},
			{Level: 4, Exp: 70},
		},
		ExpTiers: []ExpTier{
			{Bet: 1000, Multiplier: 1.5},
			{Bet: 10000, Multiplier: 2},
		},
		Businesses: []Business{
			{ID: 1, Name: "Ларек", Price: 1000},
			{ID: 2, Name: "Кафе", Price: 5000},
		},
		Deposits: []DepositTier{
			{Amount: 1000, Multiplier: 1.1, Hours: 12},
			{Amount: 5000, Multiplier: 1.25, Hours: 24},
		},
	}
}

func TestLevelFor(t *testing.T) {
	cfg := testGameConfig()

	cases := []struct {
		exp  float64
		want int
	}{
		{0, 1},
		{9.9, 1},
		{10, 2},
		{29, 2},
		{30, 3},
		{69.5, 3},
		{70, 4},
		{1000000, 4},
	}

	for _, tc := range cases {
		got := cfg.LevelFor(tc.exp)
		if got != tc.want {
			t.Errorf("LevelFor(%v) = %d, want %d", tc.exp, got, tc.want)
		}
	}
}

func TestExpMultiplier(t *testing.T) {
	cfg := testGameConfig()

	cases := []struct {
		bet  int64
		want float64
	}{
		{50, 1},
		{999, 1},
		{1000, 1.5},
		{9999, 1.5},
		{10000, 2},
		{500000, 2},
	}

	for _, tc := range cases {
		got := cfg.ExpMultiplier(tc.bet)
		if got != tc.want {
			t.Errorf("ExpMultiplier(%d) = %v, want %v", tc.bet, got, tc.want)
		}
	}
}

func TestBusinessByID(t *testing.T) {
	cfg := testGameConfig()

	b, ok := cfg.BusinessByID(2)
	if !ok || b.Name != "Кафе" {
		t.Errorf("BusinessByID(2) = %+v, %v", b, ok)
	}

	if _, ok := cfg.BusinessByID(99); ok {
		t.Error("BusinessByID(99) should not be found")
	}
}

func TestDepositTierByAmount(t *testing.T) {
	cfg := testGameConfig()

	tier, ok := cfg.DepositTierByAmount(5000)
	if !ok || tier.Hours != 24 {
		t.Errorf("DepositTierByAmount(5000) = %+v, %v", tier, ok)
	}

	// Вклад открывается только на точную сумму ступени.
	if _, ok := cfg.DepositTierByAmount(3000); ok {
		t.Error("DepositTierByAmount(3000) should not be found")
	}
}
