package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) StandupStart(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.StandupStartRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	finish, err := h.standup.Start(ref, uid, body.Length)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.StandupStartResponse{TimeFinish: finish})
}

func (h *Handler) StandupActive(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	active, finish, err := h.standup.Active(ref, uid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.StandupActiveResponse{IsActive: active, TimeFinish: finish})
}

func (h *Handler) StandupSend(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.StandupSendRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.standup.Send(ref, uid, body.Line); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
