package env

import (
	"casino_bot/internal/config"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewGameConfigFromYAML читает игровые таблицы и проверяет их на
// очевидные ошибки, чтобы сервисы не получали кривую математику.
func NewGameConfigFromYAML(path string) (*config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var cfg config.GameConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *config.GameConfig) error {
	if cfg.StartingBalance < 0 {
		return fmt.Errorf("starting_balance must be >= 0")
	}
	if cfg.MinBet <= 0 {
		return fmt.Errorf("min_bet must be > 0")
	}

	if len(cfg.Levels) == 0 {
		return fmt.Errorf("levels table is empty")
	}
	for i := 1; i < len(cfg.Levels); i++ {
		prev, cur := cfg.Levels[i-1], cfg.Levels[i]
		if cur.Level <= prev.Level || cur.Exp <= prev.Exp {
			return fmt.Errorf("levels table is not strictly increasing at level %d", cur.Level)
		}
	}

	for i := 1; i < len(cfg.ExpTiers); i++ {
		prev, cur := cfg.ExpTiers[i-1], cfg.ExpTiers[i]
		if cur.Bet <= prev.Bet || cur.Multiplier <= prev.Multiplier {
			return fmt.Errorf("exp_tiers table is not strictly increasing at bet %d", cur.Bet)
		}
	}

	if cfg.Mines.MinMines < 2 || cfg.Mines.MaxMines > 24 || cfg.Mines.MinMines > cfg.Mines.MaxMines {
		return fmt.Errorf("mines bounds must fit [2, 24]")
	}

	if cfg.Duel.MinRounds < 1 || cfg.Duel.MaxRounds < cfg.Duel.MinRounds {
		return fmt.Errorf("duel rounds bounds are invalid")
	}
	if len(cfg.Duel.Games) == 0 {
		return fmt.Errorf("duel games table is empty")
	}

	if cfg.Roulette.GroupDurationSec <= cfg.Roulette.DeadlineOffsetSec {
		return fmt.Errorf("roulette group duration must exceed deadline offset")
	}

	for name, t := range cfg.Talents {
		if t.MaxLevel <= 0 || t.CostBase <= 0 || t.CostMultiplier < 1 {
			return fmt.Errorf("talent %q rules are invalid", name)
		}
	}

	seen := make(map[int]bool, len(cfg.Businesses))
	for _, b := range cfg.Businesses {
		if seen[b.ID] {
			return fmt.Errorf("duplicate business id %d", b.ID)
		}
		seen[b.ID] = true
	}

	return nil
}
