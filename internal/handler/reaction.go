package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) React(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, h.reactions.React)
}

func (h *Handler) Unreact(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, h.reactions.Unreact)
}

func (h *Handler) handleReaction(w http.ResponseWriter, r *http.Request, op func(id, actor int64, kind string) error) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	id, err := pathId(r, "message")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.ReactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := op(id, uid, body.Kind); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
