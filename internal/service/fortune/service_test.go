package fortune

import (
	"testing"
	"time"

	"casino_bot/internal/config"
)

func TestCooldownLeft(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ptr := func(tm time.Time) *time.Time { return &tm }

	cases := []struct {
		name    string
		last    *time.Time
		minutes int
		want    int
	}{
		{"never used", nil, 30, 0},
		{"cooldown expired", ptr(now.Add(-31 * time.Minute)), 30, 0},
		{"expires right now", ptr(now.Add(-30 * time.Minute)), 30, 0},
		{"full cooldown", ptr(now), 30, 30},
		{"partial minute rounds up", ptr(now.Add(-29*time.Minute - 30*time.Second)), 30, 1},
		{"halfway", ptr(now.Add(-15 * time.Minute)), 30, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cooldownLeft(tc.last, tc.minutes, now)
			if got != tc.want {
				t.Errorf("cooldownLeft = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPickWheelPrizeKnownAmount(t *testing.T) {
	prizes := []config.WheelPrize{
		{Amount: 100, Weight: 50},
		{Amount: 500, Weight: 30},
		{Amount: 5000, Weight: 5},
	}

	known := map[int64]bool{100: true, 500: true, 5000: true}
	for i := 0; i < 200; i++ {
		amount := pickWheelPrize(prizes)
		if !known[amount] {
			t.Fatalf("pickWheelPrize returned unknown amount %d", amount)
		}
	}
}

func TestPickWheelPrizeSingle(t *testing.T) {
	prizes := []config.WheelPrize{{Amount: 42, Weight: 1}}
	if got := pickWheelPrize(prizes); got != 42 {
		t.Errorf("pickWheelPrize = %d, want 42", got)
	}
}

func TestPickCasePrizeKnownExp(t *testing.T) {
	prizes := []config.CasePrize{
		{Exp: 1, Weight: 60},
		{Exp: 10, Weight: 10},
	}

	for i := 0; i < 200; i++ {
		exp := pickCasePrize(prizes)
		if exp != 1 && exp != 10 {
			t.Fatalf("pickCasePrize returned unknown exp %v", exp)
		}
	}
}
