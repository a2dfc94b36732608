package roulette

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type soloRequest struct {
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`
	Bet      int64  `json:"bet"`
}

type groupRequest struct {
	ChatID   int64  `json:"chat_id"`
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`
	Bet      int64  `json:"bet"`
}

func (h *Handler) Solo(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[soloRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.SpinSolo(r.Context(), payload.UserID, payload.Category, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) GroupBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[groupRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.PlaceGroupBet(r.Context(), payload.ChatID, payload.UserID, payload.Category, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
