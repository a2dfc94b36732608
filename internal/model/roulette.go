package model

import "time"

// Категории ставок в рулетке, как их набирают игроки.
const (
	RouletteRed    = "к"
	RouletteBlack  = "ч"
	RouletteEven   = "чет"
	RouletteOdd    = "нечет"
	RouletteFirst  = "п" // 1-12
	RouletteSecond = "в" // 13-24
	RouletteThird  = "т" // 25-36
)

// RouletteRound - открытый групповой раунд в чате. Ставки принимаются
// до Deadline, розыгрыш происходит в StartTime.
type RouletteRound struct {
	ChatID    int64
	StartTime time.Time
	Deadline  time.Time
}

type RouletteBet struct {
	ChatID   int64
	UserID   int64
	Category string
	Amount   int64
}

type RouletteSoloResult struct {
	Number    int
	Win       bool
	Payout    int64
	Cashback  int64
	Balance   int64
	ExpGained float64
	LevelsUp  int
}

// RouletteGroupBet - подтверждение принятой групповой ставки.
type RouletteGroupBet struct {
	Round    RouletteRound
	NewRound bool
	Amount   int64 // суммарная ставка пользователя на категорию
	Balance  int64
}

type RoulettePayout struct {
	UserID   int64
	Category string
	Amount   int64
	Payout   int64 // 0 при проигрыше
	Cashback int64 // возврат удачи при проигрыше
}

// RouletteSettlement - итог розыгрыша одного группового раунда.
type RouletteSettlement struct {
	ChatID  int64
	Number  int
	Payouts []RoulettePayout
}
