package model

import "time"

// Таланты пользователя. Закрытый набор: новые добавляются в конфиг
// и сюда одновременно.
const (
	TalentUntouchable = "untouchable"
	TalentAgility     = "agility"
	TalentMastery     = "mastery"
	TalentLuck        = "luck"
)

type User struct {
	ID         int64
	Balance    int64
	Experience float64
	Level      int

	// Вклад в банке. BankBalance == 0 означает, что вклада нет.
	BankBalance  int64
	DepositUntil *time.Time

	// Отметки времени для функций с перезарядкой.
	WheelUsedAt *time.Time
	CaseUsedAt  *time.Time
	StealUsedAt *time.Time
}

// Talent - уровень одного таланта пользователя.
type Talent struct {
	UserID int64
	Name   string
	Level  int
}

// OwnedBusiness - купленный бизнес. IncomeAt показывает, до какого момента
// пассивный доход уже начислен.
type OwnedBusiness struct {
	UserID     int64
	BusinessID int
	AcquiredAt time.Time
	IncomeAt   time.Time
}

// ExpGain - итог начисления опыта.
type ExpGain struct {
	Gained     float64
	Experience float64
	Level      int
	LevelsUp   int
}

// Profile - агрегат для команды профиля.
type Profile struct {
	User       User
	Talents    []Talent
	Businesses []OwnedBusiness
}
