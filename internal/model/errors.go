package model

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrUserNotFound        = errors.New("user not found")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrSessionNotFound     = errors.New("session not found")
	ErrRoundNotFound       = errors.New("round not found")
	ErrBetsClosed          = errors.New("bets are closed")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrCooldownActive      = errors.New("cooldown active")
	ErrAlreadyOwned        = errors.New("business already owned")
	ErrDepositActive       = errors.New("deposit already active")
	ErrDepositNotFound     = errors.New("no active deposit")
	ErrDepositNotMature    = errors.New("deposit is not mature yet")
)

// CooldownError несет остаток перезарядки в минутах.
// errors.Is(err, ErrCooldownActive) для нее истинно.
type CooldownError struct {
	MinutesLeft int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active: %d min left", e.MinutesLeft)
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}
