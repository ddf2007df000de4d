package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/config"
	"github.com/crewchat-dev/crewchat/internal/setup"
)

// do runs one request against the assembled router, returning the recorder.
func do(t *testing.T, r *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func register(t *testing.T, r *mux.Router, email, nameFirst, nameLast string) api.TokenResponse {
	t.Helper()
	w := do(t, r, "POST", "/v1/auth/register", "", api.RegisterRequest{
		Email:     email,
		Password:  "secret123",
		NameFirst: nameFirst,
		NameLast:  nameLast,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[api.TokenResponse](t, w)
}

func TestApiFlow(t *testing.T) {
	deps := setup.SetupDependencies(config.Default())
	r := New(deps)

	alice := register(t, r, "alice@example.com", "Alice", "Smith")
	bob := register(t, r, "bob@example.com", "Bob", ".")

	// Channel setup
	w := do(t, r, "POST", "/v1/channels", alice.Token, api.CreateChannelRequest{Name: "general", IsPublic: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	channel := decode[api.CreateChannelResponse](t, w)

	w = do(t, r, "POST", fmt.Sprintf("/v1/channels/%d/join", channel.ChannelId), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Send with a mention: bob gets tagged
	w = do(t, r, "POST", fmt.Sprintf("/v1/channels/%d/messages", channel.ChannelId), alice.Token,
		api.SendMessageRequest{Body: "welcome @bob"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sent := decode[api.SendMessageResponse](t, w)
	assert.Equal(t, int64(1), sent.MessageId)

	w = do(t, r, "GET", "/v1/notifications", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifs := decode[api.NotificationsResponse](t, w)
	require.Len(t, notifs.Notifications, 1)
	assert.Equal(t, "tag", notifs.Notifications[0].Kind)

	// Listing
	w = do(t, r, "GET", fmt.Sprintf("/v1/channels/%d/messages", channel.ChannelId), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[api.MessagesResponse](t, w)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "welcome @bob", page.Messages[0].Body)
	assert.Equal(t, -1, page.End)

	// Reactions: second identical react conflicts
	msgPath := fmt.Sprintf("/v1/messages/%d", sent.MessageId)
	w = do(t, r, "POST", msgPath+"/react", bob.Token, api.ReactRequest{Kind: "thumbs_up"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(t, r, "POST", msgPath+"/react", bob.Token, api.ReactRequest{Kind: "thumbs_up"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, "GET", msgPath, bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[api.MessageView](t, w)
	require.Len(t, view.Reacts, 1)
	assert.True(t, view.Reacts[0].IsThisUserReacted)

	// bob cannot edit alice's message
	w = do(t, r, "PUT", msgPath, bob.Token, api.EditMessageRequest{Body: "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// alice is the global owner, so she can pin
	w = do(t, r, "POST", msgPath+"/pin", alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Search
	w = do(t, r, "GET", "/v1/search?query=welcome", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[api.SearchResponse](t, w)
	assert.Len(t, found.Messages, 1)

	// Stats
	w = do(t, r, "GET", "/v1/workspace/stats", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ws := decode[api.WorkspaceStatsResponse](t, w)
	assert.Equal(t, 1.0, ws.UtilizationRate)
	assert.Equal(t, 1, ws.MessagesExist[len(ws.MessagesExist)-1].Count)

	w = do(t, r, "GET", fmt.Sprintf("/v1/users/%d/stats", alice.AuthUserId), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	us := decode[api.UserStatsResponse](t, w)
	assert.Equal(t, 1, us.MessagesSent[len(us.MessagesSent)-1].Count)
}

func TestApiAuthRequired(t *testing.T) {
	deps := setup.SetupDependencies(config.Default())
	r := New(deps)

	for _, path := range []string{"/v1/notifications", "/v1/search?query=x", "/v1/workspace/stats"} {
		w := do(t, r, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(t, r, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApiDmFlow(t *testing.T) {
	deps := setup.SetupDependencies(config.Default())
	r := New(deps)

	alice := register(t, r, "alice@example.com", "Alice", "Smith")
	bob := register(t, r, "bob@example.com", "Bob", ".")

	w := do(t, r, "POST", "/v1/dms", alice.Token, api.CreateDmRequest{UserIds: []int64{bob.AuthUserId}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	dm := decode[api.CreateDmResponse](t, w)
	assert.Equal(t, "alicesmith, bob", dm.Name)

	w = do(t, r, "POST", fmt.Sprintf("/v1/dms/%d/messages", dm.DmId), bob.Token,
		api.SendMessageRequest{Body: "hi there"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Outsiders see nothing
	carol := register(t, r, "carol@example.com", "Carol", ".")
	w = do(t, r, "GET", fmt.Sprintf("/v1/dms/%d/messages", dm.DmId), carol.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// bob got the "added you to" notification
	w = do(t, r, "GET", "/v1/notifications", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifs := decode[api.NotificationsResponse](t, w)
	require.Len(t, notifs.Notifications, 1)
	assert.Equal(t, "added", notifs.Notifications[0].Kind)
	assert.Equal(t, "alicesmith added you to alicesmith, bob", notifs.Notifications[0].Text)

	// the DM shows up in bob's container listing, carol's is empty
	w = do(t, r, "GET", "/v1/containers", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	containers := decode[api.ContainersResponse](t, w)
	require.Len(t, containers.Containers, 1)
	assert.Equal(t, "dm", containers.Containers[0].Kind)
	assert.Equal(t, "alicesmith, bob", containers.Containers[0].Name)

	w = do(t, r, "GET", "/v1/containers", carol.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[api.ContainersResponse](t, w).Containers)
}

func TestApiAdminClear(t *testing.T) {
	deps := setup.SetupDependencies(config.Default())
	r := New(deps)

	alice := register(t, r, "alice@example.com", "Alice", "Smith") // global owner
	bob := register(t, r, "bob@example.com", "Bob", ".")

	// An active standup on channel 1 at clear time
	w := do(t, r, "POST", "/v1/channels", alice.Token, api.CreateChannelRequest{Name: "general", IsPublic: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ch := decode[api.CreateChannelResponse](t, w)
	w = do(t, r, "POST", fmt.Sprintf("/v1/channels/%d/standup/start", ch.ChannelId), alice.Token,
		api.StandupStartRequest{Length: 3600})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, "DELETE", "/v1/admin/clear", bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, "DELETE", "/v1/admin/clear", alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// alice's identity is gone with the rest of the workspace
	w = do(t, r, "GET", "/v1/notifications", alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code, "token stays valid, the log is simply empty")

	// Ids rewind after the clear; the recreated channel 1 starts standup-free
	dana := register(t, r, "dana@example.com", "Dana", ".")
	w = do(t, r, "POST", "/v1/channels", dana.Token, api.CreateChannelRequest{Name: "general", IsPublic: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reborn := decode[api.CreateChannelResponse](t, w)
	require.Equal(t, int64(1), reborn.ChannelId)

	w = do(t, r, "GET", fmt.Sprintf("/v1/channels/%d/standup", reborn.ChannelId), dana.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[api.StandupActiveResponse](t, w).IsActive)

	w = do(t, r, "POST", fmt.Sprintf("/v1/channels/%d/standup/start", reborn.ChannelId), dana.Token,
		api.StandupStartRequest{Length: 3600})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
