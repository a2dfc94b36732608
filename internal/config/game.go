package config

import "time"

// GameConfig - все игровые таблицы из config.yaml.
type GameConfig struct {
	StartingBalance int64 `yaml:"starting_balance"`
	MinBet          int64 `yaml:"min_bet"`

	Levels   []LevelStep            `yaml:"levels"`
	ExpTiers []ExpTier              `yaml:"exp_tiers"`
	Talents  map[string]TalentRules `yaml:"talents"`

	Businesses []Business `yaml:"businesses"`

	Blackjack BlackjackRules `yaml:"blackjack"`
	Mines     MinesRules     `yaml:"mines"`
	Roulette  RouletteRules  `yaml:"roulette"`
	Duel      DuelRules      `yaml:"duel"`
	Slots     SlotsRules     `yaml:"slots"`

	Wheel []WheelPrize `yaml:"lucky_wheel"`
	Case  []CasePrize  `yaml:"exp_case"`
	Steal StealRules   `yaml:"steal"`

	Deposits  []DepositTier  `yaml:"deposits"`
	Cooldowns CooldownRules  `yaml:"cooldowns"`
	Scheduler SchedulerRules `yaml:"scheduler"`
}

// LevelStep - порог опыта для уровня. Таблица строго монотонна.
type LevelStep struct {
	Level int     `yaml:"level"`
	Exp   float64 `yaml:"exp"`
}

// ExpTier - ступень множителя опыта по размеру ставки.
type ExpTier struct {
	Bet        int64   `yaml:"bet"`
	Multiplier float64 `yaml:"multiplier"`
}

type TalentRules struct {
	PerLevel       float64 `yaml:"per_level"`
	MaxLevel       int     `yaml:"max_level"`
	CostBase       int64   `yaml:"cost_base"`
	CostMultiplier float64 `yaml:"cost_multiplier"`
	ReqLevelBase   int     `yaml:"req_level_base"`
	ReqLevelStep   float64 `yaml:"req_level_step"`
}

type Business struct {
	ID         int                `yaml:"id"`
	Name       string             `yaml:"name"`
	Price      int64              `yaml:"price"`
	Income     int64              `yaml:"income"` // монет в час
	ReqLevel   int                `yaml:"req_level"`
	ReqMastery int                `yaml:"req_mastery"`
	Bonuses    map[string]float64 `yaml:"bonuses"`
}

type BlackjackRules struct {
	BlackjackMultiplier float64 `yaml:"blackjack_multiplier"`
	WinMultiplier       float64 `yaml:"win_multiplier"`
	ExpBlackjack        float64 `yaml:"exp_blackjack"`
	ExpWin              float64 `yaml:"exp_win"`
	ExpPush             float64 `yaml:"exp_push"`
	ExpLoss             float64 `yaml:"exp_loss"`
}

type MinesRules struct {
	MinMines  int     `yaml:"min_mines"`
	MaxMines  int     `yaml:"max_mines"`
	ExpFactor float64 `yaml:"exp_factor"`
	ExpWin    float64 `yaml:"exp_win"`
	ExpLoss   float64 `yaml:"exp_loss"`
}

type RouletteRules struct {
	NumberMultiplier float64 `yaml:"number_multiplier"`
	ColorMultiplier  float64 `yaml:"color_multiplier"`
	ParityMultiplier float64 `yaml:"parity_multiplier"`
	DozenMultiplier  float64 `yaml:"dozen_multiplier"`

	ExpNumber float64 `yaml:"exp_number"`
	ExpColor  float64 `yaml:"exp_color"`
	ExpParity float64 `yaml:"exp_parity"`
	ExpDozen  float64 `yaml:"exp_dozen"`
	ExpLoss   float64 `yaml:"exp_loss"`

	GroupDurationSec  int `yaml:"group_duration_sec"`
	DeadlineOffsetSec int `yaml:"deadline_offset_sec"`
}

func (r RouletteRules) GroupDuration() time.Duration {
	return time.Duration(r.GroupDurationSec) * time.Second
}

func (r RouletteRules) DeadlineOffset() time.Duration {
	return time.Duration(r.DeadlineOffsetSec) * time.Second
}

type DuelRules struct {
	MinRounds     int `yaml:"min_rounds"`
	MaxRounds     int `yaml:"max_rounds"`
	DefaultRounds int `yaml:"default_rounds"`
	// Мини-игры дуэли и максимальное значение броска в каждой.
	Games map[string]int `yaml:"games"`
}

type SlotSymbol struct {
	Symbol string  `yaml:"symbol"`
	Weight int     `yaml:"weight"`
	Payout float64 `yaml:"payout"`
}

type SlotsRules struct {
	Symbols       []SlotSymbol `yaml:"symbols"`
	JackpotSymbol string       `yaml:"jackpot_symbol"`
	ExpWin        float64      `yaml:"exp_win"`
	ExpLoss       float64      `yaml:"exp_loss"`
}

type WheelPrize struct {
	Amount int64 `yaml:"amount"`
	Weight int   `yaml:"weight"`
}

type CasePrize struct {
	Exp    float64 `yaml:"exp"`
	Weight int     `yaml:"weight"`
}

type StealRules struct {
	MinTargetBalance int64   `yaml:"min_target_balance"`
	BaseChance       float64 `yaml:"base_chance"`     // процентные пункты
	JackpotChance    float64 `yaml:"jackpot_chance"`  // порог редкого джекпота
	JackpotPercent   float64 `yaml:"jackpot_percent"` // доля баланса жертвы
	StealPercent     float64 `yaml:"steal_percent"`
	FinePercent      float64 `yaml:"fine_percent"`
}

type DepositTier struct {
	Amount     int64   `yaml:"amount"`
	Multiplier float64 `yaml:"multiplier"`
	Hours      int     `yaml:"hours"`
}

type CooldownRules struct {
	WheelMinutes int `yaml:"wheel_minutes"`
	CaseMinutes  int `yaml:"case_minutes"`
	StealMinutes int `yaml:"steal_minutes"`
}

type SchedulerRules struct {
	RouletteSweepSec int `yaml:"roulette_sweep_sec"`
	DepositSweepSec  int `yaml:"deposit_sweep_sec"`
	IncomeSweepSec   int `yaml:"income_sweep_sec"`
}

func (s SchedulerRules) RouletteSweep() time.Duration {
	return time.Duration(s.RouletteSweepSec) * time.Second
}

func (s SchedulerRules) DepositSweep() time.Duration {
	return time.Duration(s.DepositSweepSec) * time.Second
}

func (s SchedulerRules) IncomeSweep() time.Duration {
	return time.Duration(s.IncomeSweepSec) * time.Second
}

// LevelFor возвращает уровень для данного опыта: последний уровень,
// чей порог не превышает exp.
func (c *GameConfig) LevelFor(exp float64) int {
	level := 1
	for _, step := range c.Levels {
		if exp >= step.Exp {
			level = step.Level
		} else {
			break
		}
	}
	return level
}

// ExpMultiplier возвращает множитель опыта по размеру ставки.
// Ставка ниже первой ступени дает 1.
func (c *GameConfig) ExpMultiplier(bet int64) float64 {
	mult := 1.0
	for _, tier := range c.ExpTiers {
		if bet >= tier.Bet {
			mult = tier.Multiplier
		} else {
			break
		}
	}
	return mult
}

func (c *GameConfig) BusinessByID(id int) (Business, bool) {
	for _, b := range c.Businesses {
		if b.ID == id {
			return b, true
		}
	}
	return Business{}, false
}

func (c *GameConfig) DepositTierByAmount(amount int64) (DepositTier, bool) {
	for _, t := range c.Deposits {
		if t.Amount == amount {
			return t, true
		}
	}
	return DepositTier{}, false
}
