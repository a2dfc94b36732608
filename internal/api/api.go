package api

import (
	"casino_bot/internal/model"
	"errors"
	"net/http"

	"casino_bot/pkg/resp"
)

type errorResponse struct {
	Error       string `json:"error"`
	MinutesLeft int    `json:"minutes_left,omitempty"`
}

// WriteError переводит доменные ошибки в HTTP статусы. Все, что не
// распознано, считается внутренней ошибкой.
func WriteError(w http.ResponseWriter, err error) {
	var cooldown *model.CooldownError
	if errors.As(err, &cooldown) {
		resp.WriteJSONResponse(w, http.StatusTooManyRequests, errorResponse{
			Error:       err.Error(),
			MinutesLeft: cooldown.MinutesLeft,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, model.ErrActiveSessionExists),
		errors.Is(err, model.ErrAlreadyOwned),
		errors.Is(err, model.ErrDepositActive),
		errors.Is(err, model.ErrBetsClosed),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrDepositNotMature):
		status = http.StatusConflict
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrRoundNotFound),
		errors.Is(err, model.ErrDepositNotFound),
		errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
	}

	resp.WriteJSONResponse(w, status, errorResponse{Error: err.Error()})
}
