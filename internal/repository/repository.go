package repository

import (
	"casino_bot/internal/model"
	"context"
	"time"
)

type UserRepository interface {
	// Create создает строку пользователя со стартовым балансом,
	// если ее еще нет.
	Create(ctx context.Context, id int64, startBalance int64) error
	Get(ctx context.Context, id int64) (*model.User, error)
	// GetForUpdate блокирует строку пользователя до конца транзакции.
	GetForUpdate(ctx context.Context, id int64) (*model.User, error)

	SetBalance(ctx context.Context, id int64, amount int64) error
	// AddBalance меняет баланс на delta. Списание ниже нуля
	// возвращает model.ErrInsufficientFunds.
	AddBalance(ctx context.Context, id int64, delta int64) error

	SetExperience(ctx context.Context, id int64, exp float64, level int) error

	SetDeposit(ctx context.Context, id int64, bankBalance int64, until *time.Time) error
	ListMatureDeposits(ctx context.Context, now time.Time) ([]model.User, error)

	StampWheel(ctx context.Context, id int64, at time.Time) error
	StampCase(ctx context.Context, id int64, at time.Time) error
	StampSteal(ctx context.Context, id int64, at time.Time) error
}

type TalentRepository interface {
	List(ctx context.Context, userID int64) ([]model.Talent, error)
	// GetLevel возвращает 0, если талант не прокачан.
	GetLevel(ctx context.Context, userID int64, name string) (int, error)
	SetLevel(ctx context.Context, userID int64, name string, level int) error
}

type BusinessRepository interface {
	List(ctx context.Context, userID int64) ([]model.OwnedBusiness, error)
	// Add возвращает model.ErrAlreadyOwned при повторной покупке.
	Add(ctx context.Context, ob *model.OwnedBusiness) error
	// ListIncomeDue возвращает владения, по которым доход не начислялся
	// как минимум час.
	ListIncomeDue(ctx context.Context, before time.Time) ([]model.OwnedBusiness, error)
	AdvanceIncome(ctx context.Context, userID int64, businessID int, to time.Time) error
}

type OperationRepository interface {
	Add(ctx context.Context, op *model.Operation) error
	ListByUser(ctx context.Context, userID int64, limit uint64) ([]model.Operation, error)
}

type BlackjackRepository interface {
	// Create возвращает model.ErrActiveSessionExists, если партия уже идет.
	Create(ctx context.Context, s *model.BlackjackSession) error
	Get(ctx context.Context, userID int64) (*model.BlackjackSession, error)
	Update(ctx context.Context, s *model.BlackjackSession) error
	Delete(ctx context.Context, userID int64) error
}

type MinesRepository interface {
	Create(ctx context.Context, s *model.MinesSession) error
	Get(ctx context.Context, userID int64) (*model.MinesSession, error)
	Update(ctx context.Context, s *model.MinesSession) error
	Delete(ctx context.Context, userID int64) error
}

type DuelRepository interface {
	Create(ctx context.Context, d *model.Duel) error
	// GetByUser находит дуэль, где пользователь выступает любой стороной.
	GetByUser(ctx context.Context, userID int64) (*model.Duel, error)
	Update(ctx context.Context, d *model.Duel) error
	Delete(ctx context.Context, initiatorID, targetID int64) error
}

type RouletteRepository interface {
	GetRound(ctx context.Context, chatID int64) (*model.RouletteRound, error)
	CreateRound(ctx context.Context, r *model.RouletteRound) error
	ListDueRounds(ctx context.Context, now time.Time) ([]model.RouletteRound, error)
	DeleteRound(ctx context.Context, chatID int64) error

	// AddBet суммирует ставку с уже сделанной на ту же категорию
	// и возвращает итоговую сумму.
	AddBet(ctx context.Context, bet *model.RouletteBet) (int64, error)
	ListBets(ctx context.Context, chatID int64) ([]model.RouletteBet, error)
	DeleteBets(ctx context.Context, chatID int64) error
}
