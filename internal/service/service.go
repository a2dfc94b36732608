package service

import (
	"casino_bot/internal/model"
	"context"
	"time"
)

// LedgerService - баланс, опыт и вклады. Все пишущие методы сами
// открывают транзакцию, при вызове из другого сервиса присоединяются
// к уже открытой.
type LedgerService interface {
	// GetBalance создает пользователя при первом обращении.
	GetBalance(ctx context.Context, userID int64) (int64, error)
	SetBalance(ctx context.Context, userID int64, amount int64) error
	AddBalance(ctx context.Context, userID int64, delta int64, reason string) (int64, error)

	GetExperience(ctx context.Context, userID int64) (exp float64, level int, err error)
	AddExperience(ctx context.Context, userID int64, delta float64) (*model.ExpGain, error)

	Transfer(ctx context.Context, fromID, toID int64, amount int64) error

	OpenDeposit(ctx context.Context, userID int64, amount int64) (*model.User, error)
	ClaimDeposit(ctx context.Context, userID int64) (int64, error)
	// SweepDeposits выплачивает все созревшие вклады. Повторный вызов
	// с тем же моментом времени ничего не делает.
	SweepDeposits(ctx context.Context, now time.Time) (int, error)

	Profile(ctx context.Context, userID int64) (*model.Profile, error)
	History(ctx context.Context, userID int64, limit uint64) ([]model.Operation, error)
}

// BonusService - вычисление бонусов от талантов и бизнесов.
type BonusService interface {
	TalentBonus(ctx context.Context, userID int64, talent string) (float64, error)
	BusinessBonus(ctx context.Context, userID int64, name string) (float64, error)
	// ExpMultiplier - итоговый множитель опыта для ставки: ступень по
	// размеру ставки плюс мастерство плюс бизнес-бонус.
	ExpMultiplier(ctx context.Context, userID int64, bet int64) (float64, error)
	// LuckTriggers бросает кость удачи игрока.
	LuckTriggers(ctx context.Context, userID int64) (bool, error)
}

type BlackjackService interface {
	Start(ctx context.Context, userID int64, bet int64) (*model.BlackjackResult, error)
	Hit(ctx context.Context, userID int64) (*model.BlackjackResult, error)
	Stand(ctx context.Context, userID int64) (*model.BlackjackResult, error)
}

type MinesService interface {
	Start(ctx context.Context, userID int64, bet int64, mines int) (*model.MinesResult, error)
	Reveal(ctx context.Context, userID int64, cell int) (*model.MinesResult, error)
	Cashout(ctx context.Context, userID int64) (*model.MinesResult, error)
}

type RouletteService interface {
	SpinSolo(ctx context.Context, userID int64, category string, bet int64) (*model.RouletteSoloResult, error)
	PlaceGroupBet(ctx context.Context, chatID, userID int64, category string, bet int64) (*model.RouletteGroupBet, error)
	// SettleDue разыгрывает все раунды, чье время пришло. Идемпотентен:
	// разыгранный раунд удаляется в той же транзакции.
	SettleDue(ctx context.Context, now time.Time) ([]model.RouletteSettlement, error)
}

type DuelService interface {
	Challenge(ctx context.Context, chatID, initiatorID, targetID int64, bet int64) (*model.Duel, error)
	ChooseGame(ctx context.Context, userID int64, game string) (*model.Duel, error)
	ChooseRounds(ctx context.Context, userID int64, rounds int) (*model.Duel, error)
	Decline(ctx context.Context, userID int64) error
	Turn(ctx context.Context, userID int64, value int) (*model.DuelTurnResult, error)
}

type TalentService interface {
	List(ctx context.Context, userID int64) ([]model.Talent, error)
	Upgrade(ctx context.Context, userID int64, name string) (*model.Talent, error)
}

type ShopService interface {
	Buy(ctx context.Context, userID int64, businessID int) (*model.OwnedBusiness, error)
	// SweepIncome начисляет пассивный доход за полные прошедшие часы.
	SweepIncome(ctx context.Context, now time.Time) (int, error)
}

type FortuneService interface {
	SpinWheel(ctx context.Context, userID int64) (*model.WheelResult, error)
	OpenCase(ctx context.Context, userID int64) (*model.CaseResult, error)
	Steal(ctx context.Context, thiefID, targetID int64) (*model.StealResult, error)
}

type SlotsService interface {
	Spin(ctx context.Context, userID int64, bet int64) (*model.SlotsResult, error)
}
