package model

// Состояние хода в дуэли. Пустая строка - ждем бросок цели,
// DuelMoveTarget - цель бросила, ждем бросок инициатора.
const (
	DuelMoveNone   = ""
	DuelMoveTarget = "target"
)

// Duel - сессия дуэли между парой игроков. Ставки не списываются
// до завершения, проверка баланса повторяется на нулевом раунде.
type Duel struct {
	ChatID         int64
	InitiatorID    int64
	TargetID       int64
	Bet            int64
	Game           string
	Rounds         int
	CurrentRound   int
	Move           string
	InitiatorScore int
	TargetScore    int
}

// Opponent возвращает ID соперника для данного участника.
func (d *Duel) Opponent(userID int64) int64 {
	if userID == d.InitiatorID {
		return d.TargetID
	}
	return d.InitiatorID
}

type DuelTurnResult struct {
	Duel      Duel
	RoundDone bool
	Finished  bool
	// WinnerID и LoserID заполнены только при Finished и не при ничьей.
	WinnerID int64
	LoserID  int64
	Draw     bool
}
