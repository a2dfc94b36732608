package mines

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.MinesService
}

type Handler struct {
	serv service.MinesService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type startRequest struct {
	UserID int64 `json:"user_id"`
	Bet    int64 `json:"bet"`
	Mines  int   `json:"mines"`
}

type revealRequest struct {
	UserID int64 `json:"user_id"`
	Cell   int   `json:"cell"`
}

type cashoutRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[startRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Start(r.Context(), payload.UserID, payload.Bet, payload.Mines)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[revealRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Reveal(r.Context(), payload.UserID, payload.Cell)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Cashout(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[cashoutRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Cashout(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
