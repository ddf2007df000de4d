package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) Pin(w http.ResponseWriter, r *http.Request) {
	h.handlePin(w, r, h.pins.Pin)
}

func (h *Handler) Unpin(w http.ResponseWriter, r *http.Request) {
	h.handlePin(w, r, h.pins.Unpin)
}

func (h *Handler) handlePin(w http.ResponseWriter, r *http.Request, op func(id, actor int64) error) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	id, err := pathId(r, "message")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := op(id, uid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
