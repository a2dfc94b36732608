package talents

import (
	"testing"

	"casino_bot/internal/config"
)

func TestUpgradeCost(t *testing.T) {
	rules := config.TalentRules{CostBase: 5000, CostMultiplier: 2}

	cases := []struct {
		level int
		want  int64
	}{
		{0, 5000},
		{1, 10000},
		{2, 20000},
		{5, 160000},
	}

	for _, tc := range cases {
		got := upgradeCost(rules, tc.level)
		if got != tc.want {
			t.Errorf("upgradeCost(level=%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestRequiredLevel(t *testing.T) {
	rules := config.TalentRules{ReqLevelBase: 2, ReqLevelStep: 1.5}

	cases := []struct {
		level int
		want  int
	}{
		{0, 2},
		{1, 4},  // 2 + round(1.6)
		{2, 5},  // 2 + round(3.1)
		{4, 8},  // 2 + round(6.1)
		{10, 17},
	}

	for _, tc := range cases {
		got := requiredLevel(rules, tc.level)
		if got != tc.want {
			t.Errorf("requiredLevel(level=%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}
