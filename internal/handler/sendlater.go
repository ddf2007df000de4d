package handler

import (
	"net/http"
	"time"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

// SendLater schedules a message for future delivery in a channel or DM.
// The response carries no message id: ids are allocated at fire time.
func (h *Handler) SendLater(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.SendLaterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	fireAt := time.Unix(body.FireAt, 0).UTC()
	if err := h.deferred.SendLater(ref, uid, body.Body, fireAt); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
