package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crewchat-dev/crewchat/internal/middleware"
	"github.com/crewchat-dev/crewchat/internal/middleware/metrics"
	"github.com/crewchat-dev/crewchat/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	h := deps.Handler
	needAuth := middleware.NeedAuth(deps.Jwt)

	r.HandleFunc("/health", h.Health).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Auth
	v1.HandleFunc("/auth/register", h.Register).Methods("POST")
	v1.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Admin
	v1.HandleFunc("/admin/clear", needAuth(h.Clear)).Methods("DELETE")

	// Channels
	v1.HandleFunc("/channels", needAuth(h.CreateChannel)).Methods("POST")
	v1.HandleFunc("/channels/{channel}/join", needAuth(h.JoinChannel)).Methods("POST")
	v1.HandleFunc("/channels/{channel}/invite", needAuth(h.InviteToChannel)).Methods("POST")
	v1.HandleFunc("/channels/{channel}/leave", needAuth(h.LeaveChannel)).Methods("POST")

	// DMs
	v1.HandleFunc("/dms", needAuth(h.CreateDm)).Methods("POST")

	// Messages: immediate and deferred sends, pagination
	v1.HandleFunc("/channels/{channel}/messages", needAuth(h.SendMessage)).Methods("POST")
	v1.HandleFunc("/channels/{channel}/messages", needAuth(h.ListMessages)).Methods("GET")
	v1.HandleFunc("/channels/{channel}/sendlater", needAuth(h.SendLater)).Methods("POST")
	v1.HandleFunc("/dms/{dm}/messages", needAuth(h.SendMessage)).Methods("POST")
	v1.HandleFunc("/dms/{dm}/messages", needAuth(h.ListMessages)).Methods("GET")
	v1.HandleFunc("/dms/{dm}/sendlater", needAuth(h.SendLater)).Methods("POST")

	v1.HandleFunc("/messages/{message}", needAuth(h.GetMessage)).Methods("GET")
	v1.HandleFunc("/messages/{message}", needAuth(h.EditMessage)).Methods("PUT")
	v1.HandleFunc("/messages/{message}", needAuth(h.RemoveMessage)).Methods("DELETE")

	// Reactions and pins
	v1.HandleFunc("/messages/{message}/react", needAuth(h.React)).Methods("POST")
	v1.HandleFunc("/messages/{message}/unreact", needAuth(h.Unreact)).Methods("POST")
	v1.HandleFunc("/messages/{message}/pin", needAuth(h.Pin)).Methods("POST")
	v1.HandleFunc("/messages/{message}/unpin", needAuth(h.Unpin)).Methods("POST")

	// Standups (channels only)
	v1.HandleFunc("/channels/{channel}/standup/start", needAuth(h.StandupStart)).Methods("POST")
	v1.HandleFunc("/channels/{channel}/standup", needAuth(h.StandupActive)).Methods("GET")
	v1.HandleFunc("/channels/{channel}/standup/send", needAuth(h.StandupSend)).Methods("POST")

	// Read-side aggregators
	v1.HandleFunc("/containers", needAuth(h.ListContainers)).Methods("GET")
	v1.HandleFunc("/search", needAuth(h.Search)).Methods("GET")
	v1.HandleFunc("/notifications", needAuth(h.GetNotifications)).Methods("GET")
	v1.HandleFunc("/users/{user}/stats", needAuth(h.UserStats)).Methods("GET")
	v1.HandleFunc("/workspace/stats", needAuth(h.WorkspaceStats)).Methods("GET")

	// Wildcard OPTIONS handler so preflight requests don't 404
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
