package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}

	msgs, err := h.search.Search(uid, r.URL.Query().Get("query"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	views := make([]api.MessageView, 0, len(msgs))
	for i := range msgs {
		views = append(views, api.NewMessageView(&msgs[i], uid))
	}
	writeJSON(w, api.SearchResponse{Messages: views})
}
