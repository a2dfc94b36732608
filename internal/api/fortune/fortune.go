package fortune

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.FortuneService
}

type Handler struct {
	serv service.FortuneService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type userRequest struct {
	UserID int64 `json:"user_id"`
}

type stealRequest struct {
	UserID   int64 `json:"user_id"`
	TargetID int64 `json:"target_id"`
}

func (h *Handler) SpinWheel(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[userRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.SpinWheel(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) OpenCase(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[userRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.OpenCase(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) Steal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[stealRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Steal(r.Context(), payload.UserID, payload.TargetID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
