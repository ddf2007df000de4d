package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) CreateDm(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	var body api.CreateDmRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	dmId, name, err := h.directory.CreateDm(uid, body.UserIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CreateDmResponse{DmId: dmId, Name: name})
}
