package talents

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.TalentService
}

type Handler struct {
	serv service.TalentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type listRequest struct {
	UserID int64 `json:"user_id"`
}

type upgradeRequest struct {
	UserID int64  `json:"user_id"`
	Talent string `json:"talent"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[listRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	talents, err := h.serv.List(r.Context(), payload.UserID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, talents)
}

func (h *Handler) Upgrade(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[upgradeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	talent, err := h.serv.Upgrade(r.Context(), payload.UserID, payload.Talent)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, talent)
}
