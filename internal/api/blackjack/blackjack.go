package blackjack

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type startRequest struct {
	UserID int64 `json:"user_id"`
	Bet    int64 `json:"bet"`
}

type actionRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[startRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Start(r.Context(), payload.UserID, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[actionRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Hit(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[actionRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Stand(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
