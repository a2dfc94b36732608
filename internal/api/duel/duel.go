package duel

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.DuelService
}

type Handler struct {
	serv service.DuelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type challengeRequest struct {
	ChatID      int64 `json:"chat_id"`
	InitiatorID int64 `json:"initiator_id"`
	TargetID    int64 `json:"target_id"`
	Bet         int64 `json:"bet"`
}

type gameRequest struct {
	UserID int64  `json:"user_id"`
	Game   string `json:"game"`
}

type roundsRequest struct {
	UserID int64 `json:"user_id"`
	Rounds int   `json:"rounds"`
}

type declineRequest struct {
	UserID int64 `json:"user_id"`
}

type turnRequest struct {
	UserID int64 `json:"user_id"`
	Value  int   `json:"value"`
}

func (h *Handler) Challenge(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[challengeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Challenge(r.Context(), payload.ChatID, payload.InitiatorID, payload.TargetID, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) ChooseGame(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[gameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.ChooseGame(r.Context(), payload.UserID, payload.Game)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) ChooseRounds(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[roundsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.ChooseRounds(r.Context(), payload.UserID, payload.Rounds)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[declineRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.Decline(r.Context(), payload.UserID); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"declined": true})
}

func (h *Handler) Turn(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[turnRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Turn(r.Context(), payload.UserID, payload.Value)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
