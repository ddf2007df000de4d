package handler

import (
	"net/http"
	"strconv"

	"github.com/crewchat-dev/crewchat/internal/api"
	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

// SendMessage handles both /channels/{channel}/messages and
// /dms/{dm}/messages.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.SendMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.messages.Send(ref, uid, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SendMessageResponse{MessageId: id})
}

// ListMessages returns one pagination window, most-recent-first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	ref, err := containerFromPath(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	start := 0
	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = strconv.Atoi(raw)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, &internal_errors.ValidationError{Message: "start must be an integer"})
			return
		}
	}

	msgs, end, err := h.messages.List(ref, uid, start)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	views := make([]api.MessageView, 0, len(msgs))
	for i := range msgs {
		views = append(views, api.NewMessageView(&msgs[i], uid))
	}
	writeJSON(w, api.MessagesResponse{Messages: views, Start: start, End: end})
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	id, err := pathId(r, "message")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.messages.Get(id, uid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewMessageView(msg, uid))
}

// EditMessage replaces the body; an empty body removes the message.
func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	id, err := pathId(r, "message")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.EditMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.messages.Edit(id, uid, body.Body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RemoveMessage(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}
	id, err := pathId(r, "message")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.messages.Remove(id, uid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
