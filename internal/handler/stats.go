package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := uidFromRequest(w, r); !ok {
		return
	}
	target, err := pathId(r, "user")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	stats, err := h.stats.UserStats(target)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UserStatsResponse{
		ChannelsJoined:  api.NewSeriesPointViews(stats.ChannelsJoined),
		DmsJoined:       api.NewSeriesPointViews(stats.DmsJoined),
		MessagesSent:    api.NewSeriesPointViews(stats.MessagesSent),
		InvolvementRate: stats.InvolvementRate,
	})
}

func (h *Handler) WorkspaceStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := uidFromRequest(w, r); !ok {
		return
	}

	stats := h.stats.WorkspaceStats()
	writeJSON(w, api.WorkspaceStatsResponse{
		ChannelsExist:   api.NewSeriesPointViews(stats.ChannelsExist),
		DmsExist:        api.NewSeriesPointViews(stats.DmsExist),
		MessagesExist:   api.NewSeriesPointViews(stats.MessagesExist),
		UtilizationRate: stats.UtilizationRate,
	})
}
