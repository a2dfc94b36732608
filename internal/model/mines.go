package model

const (
	MinesPlaying = "playing"
	MinesLoss    = "loss"
	MinesCashout = "cashout"
)

const MinesFieldSize = 25

// MinesSession - активное поле. Клетка поля: 0 - мина, 1 - безопасная.
type MinesSession struct {
	UserID int64
	Bet    int64
	Mines  int
	Field  []int
	Opened []int
}

// SafeOpened возвращает число уже открытых безопасных клеток.
func (s *MinesSession) SafeOpened() int {
	return len(s.Opened)
}

// SafeTotal возвращает общее число безопасных клеток на поле.
func (s *MinesSession) SafeTotal() int {
	return MinesFieldSize - s.Mines
}

type MinesResult struct {
	Outcome    string
	Multiplier float64
	Payout     int64
	Cashback   int64
	Balance    int64
	Field      []int
	Opened     []int
	ExpGained  float64
	LevelsUp   int
}
