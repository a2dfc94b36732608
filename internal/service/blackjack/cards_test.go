package blackjack

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  int
	}{
		{"simple", []string{"2", "5"}, 7},
		{"faces", []string{"K", "Q", "J"}, 30},
		{"ace high", []string{"A", "7"}, 18},
		{"ace drops to one", []string{"A", "7", "9"}, 17},
		{"two aces", []string{"A", "A"}, 12},
		{"two aces with ten", []string{"A", "A", "10"}, 12},
		{"three aces", []string{"A", "A", "A"}, 13},
		{"blackjack", []string{"A", "K"}, 21},
		{"bust", []string{"K", "Q", "5"}, 25},
		{"empty hand", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := score(tc.cards)
			if got != tc.want {
				t.Errorf("score(%v) = %d, want %d", tc.cards, got, tc.want)
			}
		})
	}
}

func TestIsNatural(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  bool
	}{
		{"ace plus ten", []string{"A", "10"}, true},
		{"ace plus king", []string{"K", "A"}, true},
		{"twenty in two cards", []string{"K", "Q"}, false},
		{"twenty one in three cards", []string{"7", "7", "7"}, false},
		{"single card", []string{"A"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := isNatural(tc.cards)
			if got != tc.want {
				t.Errorf("isNatural(%v) = %v, want %v", tc.cards, got, tc.want)
			}
		})
	}
}

func TestDrawCardKnownRank(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := drawCard()
		if _, ok := cardValues[c]; !ok {
			t.Fatalf("drawCard returned unknown rank %q", c)
		}
	}
}
