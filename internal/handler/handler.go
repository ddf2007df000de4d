package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crewchat-dev/crewchat/internal/domain"
	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"
	"github.com/crewchat-dev/crewchat/internal/middleware"
	"github.com/crewchat-dev/crewchat/internal/service"
)

type Handler struct {
	auth          service.AuthService
	directory     service.DirectoryService
	messages      service.MessageService
	reactions     service.ReactionService
	pins          service.PinService
	deferred      service.DeferredService
	standup       service.StandupService
	search        service.SearchService
	notifications service.NotificationService
	stats         service.StatsService
	admin         service.AdminService
}

// Services bundles everything the handler dispatches to.
type Services struct {
	Auth          service.AuthService
	Directory     service.DirectoryService
	Messages      service.MessageService
	Reactions     service.ReactionService
	Pins          service.PinService
	Deferred      service.DeferredService
	Standup       service.StandupService
	Search        service.SearchService
	Notifications service.NotificationService
	Stats         service.StatsService
	Admin         service.AdminService
}

func New(s *Services) *Handler {
	return &Handler{
		auth:          s.Auth,
		directory:     s.Directory,
		messages:      s.Messages,
		reactions:     s.Reactions,
		pins:          s.Pins,
		deferred:      s.Deferred,
		standup:       s.Standup,
		search:        s.Search,
		notifications: s.Notifications,
		stats:         s.Stats,
		admin:         s.Admin,
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// uidFromRequest returns the authenticated user id set by the auth
// middleware.
func uidFromRequest(w http.ResponseWriter, r *http.Request) (domain.UserId, bool) {
	uid, ok := middleware.GetUserIdFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return uid, true
}

// pathId parses the named route variable as an int64 id.
func pathId(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &internal_errors.ValidationError{Message: name + " must be an integer"}
	}
	return id, nil
}

// containerFromPath builds the ContainerRef a route addresses: routes under
// /channels/{channel} carry channel refs, routes under /dms/{dm} DM refs.
func containerFromPath(r *http.Request) (domain.ContainerRef, error) {
	vars := mux.Vars(r)
	if raw, ok := vars["channel"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ContainerRef{}, &internal_errors.ValidationError{Message: "channel must be an integer"}
		}
		return domain.ChannelRef(id), nil
	}
	if raw, ok := vars["dm"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ContainerRef{}, &internal_errors.ValidationError{Message: "dm must be an integer"}
		}
		return domain.DmRef(id), nil
	}
	return domain.ContainerRef{}, &internal_errors.ValidationError{Message: "missing container in path"}
}
