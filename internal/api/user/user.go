package user

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.LedgerService
}

type Handler struct {
	serv service.LedgerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type userRequest struct {
	UserID int64 `json:"user_id"`
}

type amountRequest struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

type transferRequest struct {
	FromID int64 `json:"from_id"`
	ToID   int64 `json:"to_id"`
	Amount int64 `json:"amount"`
}

type historyRequest struct {
	UserID int64  `json:"user_id"`
	Limit  uint64 `json:"limit"`
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[userRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.GetBalance(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]int64{"balance": balance})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[userRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.serv.Profile(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, profile)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[historyRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Limit == 0 || payload.Limit > 100 {
		payload.Limit = 20
	}

	ops, err := h.serv.History(r.Context(), payload.UserID, payload.Limit)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, ops)
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[transferRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.Transfer(r.Context(), payload.FromID, payload.ToID, payload.Amount); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"transferred": true})
}

func (h *Handler) OpenDeposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[amountRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.serv.OpenDeposit(r.Context(), payload.UserID, payload.Amount)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, u)
}

func (h *Handler) ClaimDeposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[userRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payout, err := h.serv.ClaimDeposit(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]int64{"payout": payout})
}

// SetBalance - админская ручка с абсолютной записью баланса.
func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[amountRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.SetBalance(r.Context(), payload.UserID, payload.Amount); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"updated": true})
}
