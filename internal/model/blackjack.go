package model

// Исходы партии в блэкджек.
const (
	BlackjackPlaying   = "playing"
	BlackjackBlackjack = "blackjack"
	BlackjackWin       = "win"
	BlackjackPush      = "push"
	BlackjackLoss      = "loss"
)

// BlackjackSession - активная партия. Карты хранятся номиналами
// ("A", "2".."10", "J", "Q", "K"), масть на счет не влияет.
type BlackjackSession struct {
	UserID      int64
	Bet         int64
	PlayerCards []string
	DealerCards []string
}

type BlackjackResult struct {
	Outcome     string
	PlayerCards []string
	DealerCards []string
	PlayerScore int
	DealerScore int
	Payout      int64
	Cashback    int64
	Balance     int64
	ExpGained   float64
	LevelsUp    int
}
