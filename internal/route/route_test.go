package route

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/auth"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

type created struct {
	ID uint `json:"id"`
}

func inbox(t *testing.T, deps *app.Deps, h http.Handler, tok string) []notification.Notification {
	t.Helper()
	deps.Notifier.Wait()
	w := apptest.Request(t, h, http.MethodGet, "/api/notifications", nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
	return apptest.Data[pagination.Page[notification.Notification]](t, w).Items
}

func TestOpsEndpoints(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := SetupRouter(deps)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"health", "/api/health", http.StatusOK},
		{"metrics", "/metrics", http.StatusOK},
		{"swagger doc", "/swagger/doc.json", http.StatusOK},
		{"unknown route", "/api/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apptest.Request(t, r, http.MethodGet, tt.path, nil, "")
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := apptest.Request(t, r, http.MethodGet, "/api/health", nil, "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestGlobalRateLimit(t *testing.T) {
	cfg := apptest.Config(t)
	cfg.RateLimit.Requests = 2
	deps := apptest.NewDeps(t, cfg)
	r := SetupRouter(deps)

	for i := 0; i < 2; i++ {
		w := apptest.Request(t, r, http.MethodGet, "/api/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := apptest.Request(t, r, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestQuestionFlow(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := SetupRouter(deps)

	w := apptest.Request(t, r, http.MethodPost, "/api/auth/register", auth.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@student.belgiumcampus.ac.za",
		Password: "Secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = apptest.Request(t, r, http.MethodPost, "/api/auth/login", auth.LoginRequest{
		Email:    "alice@student.belgiumcampus.ac.za",
		Password: "Secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var aliceTok string
	for _, c := range w.Result().Cookies() {
		if c.Name == deps.Auth.CookieName() {
			aliceTok = c.Value
		}
	}
	require.NotEmpty(t, aliceTok)

	w = apptest.Request(t, r, http.MethodPost, "/api/questions", map[string]any{
		"title":       "Recursion base case",
		"body":        "How do I pick the base case for a recursive sum?",
		"module_code": "PRG281",
	}, aliceTok)
	require.Equal(t, http.StatusCreated, w.Code)
	q := apptest.Data[created](t, w)

	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor), testutils.WithName("Tom Tutor"))
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)

	w = apptest.Request(t, r, http.MethodPost, fmt.Sprintf("/api/questions/%d/responses", q.ID), map[string]any{
		"message": "Stop when the slice is empty and return zero.",
	}, tutorTok)
	require.Equal(t, http.StatusCreated, w.Code)

	items := inbox(t, deps, r, aliceTok)
	require.Len(t, items, 1)
	assert.Equal(t, notification.TypeQuestionResponse, items[0].Type)
	assert.Equal(t, "New response to: Recursion base case", items[0].Title)
	assert.False(t, items[0].Read)

	assert.Empty(t, inbox(t, deps, r, tutorTok))

	w = apptest.Request(t, r, http.MethodGet, fmt.Sprintf("/api/questions/%d", q.ID), nil, aliceTok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "answered", apptest.Data[map[string]any](t, w)["status"])
}

func TestCalendarFlow(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := SetupRouter(deps)

	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	s1 := testutils.CreateTestUser(deps.DB)
	s2 := testutils.CreateTestUser(deps.DB)
	s3 := testutils.CreateTestUser(deps.DB)
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)
	s1Tok := apptest.Token(t, deps, s1.ID, s1.Role)
	s2Tok := apptest.Token(t, deps, s2.ID, s2.Role)
	s3Tok := apptest.Token(t, deps, s3.ID, s3.Role)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	w := apptest.Request(t, r, http.MethodPost, "/api/calendar", map[string]any{
		"title":     "Consultation",
		"starts_at": start,
		"ends_at":   start.Add(time.Hour),
		"attendees": []uint{s1.ID, s2.ID},
	}, tutorTok)
	require.Equal(t, http.StatusCreated, w.Code)
	ev := apptest.Data[created](t, w)
	deps.Notifier.Wait()

	w = apptest.Request(t, r, http.MethodPatch, fmt.Sprintf("/api/calendar/%d", ev.ID), map[string]any{
		"attendees": []uint{s2.ID, s3.ID},
	}, tutorTok)
	require.Equal(t, http.StatusOK, w.Code)

	changes := func(tok string) []string {
		var out []string
		for _, n := range inbox(t, deps, r, tok) {
			out = append(out, n.Metadata["change"].(string))
		}
		return out
	}
	assert.ElementsMatch(t, []string{"created", "removed"}, changes(s1Tok))
	assert.ElementsMatch(t, []string{"created"}, changes(s2Tok))
	assert.ElementsMatch(t, []string{"added"}, changes(s3Tok))
	assert.Empty(t, changes(tutorTok))

	w = apptest.Request(t, r, http.MethodGet, fmt.Sprintf("/api/calendar/%d", ev.ID), nil, s1Tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = apptest.Request(t, r, http.MethodGet, fmt.Sprintf("/api/calendar/%d", ev.ID), nil, s3Tok)
	assert.Equal(t, http.StatusOK, w.Code)
}
