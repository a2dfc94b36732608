package model

// Исходы кражи.
const (
	StealJackpot = "jackpot"
	StealSuccess = "success"
	StealFail    = "fail"
)

type WheelResult struct {
	Prize   int64
	Balance int64
}

type CaseResult struct {
	ExpGained  float64
	Experience float64
	Level      int
	LevelsUp   int
}

type StealResult struct {
	Outcome  string
	TargetID int64
	Amount   int64 // украдено либо штраф, смотря по исходу
	Balance  int64
}

type SlotsResult struct {
	Symbols   [3]string
	Win       bool
	Payout    int64
	Balance   int64
	ExpGained float64
	LevelsUp  int
}
