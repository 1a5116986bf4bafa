package question

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func TestCreateQuestion(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB)
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)

	tests := []struct {
		name   string
		body   map[string]string
		token  string
		status int
	}{
		{"valid", map[string]string{"title": "Recursion help", "body": "What is a base case?", "module_code": "prg281"}, aliceTok, http.StatusCreated},
		{"short title", map[string]string{"title": "Help", "body": "What is a base case?"}, aliceTok, http.StatusBadRequest},
		{"short body after trim", map[string]string{"title": "Recursion help", "body": "   why?    "}, aliceTok, http.StatusBadRequest},
		{"missing body", map[string]string{"title": "Recursion help"}, aliceTok, http.StatusBadRequest},
		{"tutors cannot ask", map[string]string{"title": "Recursion help", "body": "What is a base case?"}, tutorTok, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apptest.Request(t, r, http.MethodPost, "/api/questions", tt.body, tt.token)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusCreated {
				q := apptest.Data[question.Question](t, w)
				assert.Equal(t, question.StatusOpen, q.Status)
				assert.Equal(t, "PRG281", q.ModuleCode)
				assert.Equal(t, alice.ID, q.StudentID)
			}
		})
	}
}

func TestQuestionVisibility(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB)
	bob := testutils.CreateTestUser(deps.DB)
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)

	mine := testutils.CreateTestQuestion(deps.DB, alice.ID)
	theirs := testutils.CreateTestQuestion(deps.DB, bob.ID, func(q *question.Question) { q.Title = "Database joins" })

	w := apptest.Request(t, r, http.MethodGet, "/api/questions", nil, aliceTok)
	require.Equal(t, http.StatusOK, w.Code)
	page := apptest.Data[pagination.Page[question.Question]](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, mine.ID, page.Items[0].ID)

	w = apptest.Request(t, r, http.MethodGet, "/api/questions?q=joins", nil, tutorTok)
	page = apptest.Data[pagination.Page[question.Question]](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, theirs.ID, page.Items[0].ID)

	w = apptest.Request(t, r, http.MethodGet, "/api/questions/"+fmt.Sprint(theirs.ID), nil, aliceTok)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = apptest.Request(t, r, http.MethodGet, "/api/questions/"+fmt.Sprint(theirs.ID), nil, tutorTok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRespondNotifiesAsker(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB)
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)
	q := testutils.CreateTestQuestion(deps.DB, alice.ID)
	path := fmt.Sprintf("/api/questions/%d/responses", q.ID)

	w := apptest.Request(t, r, http.MethodPost, path, map[string]string{"message": "Start from n == 0"}, aliceTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = apptest.Request(t, r, http.MethodPost, path, map[string]string{"message": "Start from n == 0"}, tutorTok)
	require.Equal(t, http.StatusCreated, w.Code)
	w = apptest.Request(t, r, http.MethodPost, path, map[string]string{"message": "Then recurse on n-1"}, tutorTok)
	require.Equal(t, http.StatusCreated, w.Code)
	deps.Notifier.Wait()

	w = apptest.Request(t, r, http.MethodGet, "/api/questions/"+fmt.Sprint(q.ID), nil, aliceTok)
	require.Equal(t, http.StatusOK, w.Code)
	got := apptest.Data[question.Question](t, w)
	assert.Equal(t, question.StatusAnswered, got.Status)
	require.Len(t, got.Responses, 2)
	assert.Equal(t, "Start from n == 0", got.Responses[0].Message)

	var rows []notification.Notification
	require.NoError(t, deps.DB.Where("user_id = ?", alice.ID).Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, notification.TypeQuestionResponse, rows[0].Type)
	assert.Equal(t, json.Number(fmt.Sprint(q.ID)), rows[0].Metadata["question_id"])

	w = apptest.Request(t, r, http.MethodPost, "/api/questions/9999/responses", map[string]string{"message": "hello"}, tutorTok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
