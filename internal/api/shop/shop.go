package shop

import (
	"casino_bot/internal/api"
	"casino_bot/internal/service"
	"casino_bot/pkg/req"
	"casino_bot/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.ShopService
}

type Handler struct {
	serv service.ShopService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type buyRequest struct {
	UserID     int64 `json:"user_id"`
	BusinessID int   `json:"business_id"`
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[buyRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owned, err := h.serv.Buy(r.Context(), payload.UserID, payload.BusinessID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, owned)
}
