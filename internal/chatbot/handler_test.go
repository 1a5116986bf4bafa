package chatbot

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/assistant"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func TestChat_Anonymous(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	w := apptest.Request(t, r, http.MethodPost, "/api/assistant/chat", map[string]any{"message": "how do I submit an assignment"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := apptest.Data[ChatResponse](t, w)
	assert.Contains(t, resp.Reply.Reply, "Submissions")
	assert.False(t, resp.Fallback)
	assert.NotEmpty(t, resp.Suggestions)
	require.NotEmpty(t, resp.SessionID)

	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history?session_id="+resp.SessionID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	history := apptest.Data[HistoryResponse](t, w)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, assistant.RoleUser, history.Messages[0].Role)
	assert.Equal(t, assistant.RoleAssistant, history.Messages[1].Role)

	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history?session_id=someone-else", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, apptest.Data[HistoryResponse](t, w).Messages)

	w = apptest.Request(t, r, http.MethodDelete, "/api/assistant/history?session_id="+resp.SessionID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history?session_id="+resp.SessionID, nil, "")
	assert.Empty(t, apptest.Data[HistoryResponse](t, w).Messages)
}

func TestChat_SignedInUsesUserSession(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB)
	tok := apptest.Token(t, deps, alice.ID, alice.Role)

	w := apptest.Request(t, r, http.MethodPost, "/api/assistant/chat", map[string]any{"message": "what is recursion", "session_id": "ignored"}, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, apptest.Data[ChatResponse](t, w).SessionID)

	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history", nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, apptest.Data[HistoryResponse](t, w).Messages, 2)

	w = apptest.Request(t, r, http.MethodGet, "/api/assistant/history?session_id=ignored", nil, "")
	assert.Empty(t, apptest.Data[HistoryResponse](t, w).Messages)
}

func TestChat_Validation(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing message", body: map[string]any{}},
		{name: "blank message", body: map[string]any{"message": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apptest.Request(t, r, http.MethodPost, "/api/assistant/chat", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSuggestions(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	w := apptest.Request(t, r, http.MethodGet, "/api/assistant/suggestions?q=grade", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := apptest.Data[map[string][]string](t, w)
	assert.Equal(t, assistant.Suggestions("grade"), data["suggestions"])
}
