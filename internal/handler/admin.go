package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/utils"
)

// Clear wipes the whole workspace. Global owner only.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.admin.Clear(uid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
