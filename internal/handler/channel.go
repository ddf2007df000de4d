package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	var body api.CreateChannelRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	cid, err := h.directory.CreateChannel(uid, body.Name, body.IsPublic)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CreateChannelResponse{ChannelId: cid})
}

func (h *Handler) JoinChannel(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	cid, err := pathId(r, "channel")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.directory.JoinChannel(cid, uid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) InviteToChannel(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	cid, err := pathId(r, "channel")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.InviteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.directory.InviteToChannel(cid, uid, body.UserId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) LeaveChannel(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	cid, err := pathId(r, "channel")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.directory.LeaveChannel(cid, uid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ListContainers returns the caller's channels and DMs in join order.
func (h *Handler) ListContainers(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}

	listings := h.directory.Containers(uid)
	views := make([]api.ContainerView, 0, len(listings))
	for _, l := range listings {
		views = append(views, api.ContainerView{
			Kind: string(l.Ref.Kind),
			Id:   l.Ref.Id,
			Name: l.Name,
		})
	}

	writeJSON(w, api.ContainersResponse{Containers: views})
}
