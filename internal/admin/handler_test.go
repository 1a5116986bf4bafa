package admin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func TestStats(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	admin := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleAdmin))
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	alice := testutils.CreateTestUser(deps.DB)
	bob := testutils.CreateTestUser(deps.DB)
	adminTok := apptest.Token(t, deps, admin.ID, admin.Role)
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)

	testutils.CreateTestCourse(deps.DB)
	testutils.CreateTestTopic(deps.DB, tutor.ID)
	testutils.CreateTestTopic(deps.DB, tutor.ID)
	testutils.CreateTestQuestion(deps.DB, alice.ID)
	testutils.CreateTestQuestion(deps.DB, bob.ID, func(q *question.Question) { q.Status = question.StatusAnswered })
	testutils.CreateTestSubmission(deps.DB, alice.ID)
	testutils.CreateTestSubmission(deps.DB, bob.ID, func(s *submission.Submission) { s.Status = submission.StatusGraded })
	testutils.CreateTestSubmission(deps.DB, bob.ID, func(s *submission.Submission) { s.Status = submission.StatusGraded })
	require.NoError(t, deps.DB.Create(&[]notification.Notification{
		{UserID: alice.ID, Type: notification.TypeSystem, Title: "a"},
		{UserID: bob.ID, Type: notification.TypeSystem, Title: "b", Read: true},
	}).Error)

	w := apptest.Request(t, r, http.MethodGet, "/api/admin/stats", nil, aliceTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = apptest.Request(t, r, http.MethodGet, "/api/admin/stats", nil, adminTok)
	require.Equal(t, http.StatusOK, w.Code)
	stats := apptest.Data[Stats](t, w)

	assert.Equal(t, map[string]int64{"student": 2, "tutor": 1, "admin": 1}, stats.UsersByRole)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, map[string]int64{"submitted": 1, "graded": 2, "returned": 0}, stats.SubmissionsByStatus)
	assert.Equal(t, int64(1), stats.Courses)
	assert.Equal(t, int64(2), stats.Topics)
	assert.Equal(t, QuestionStats{Open: 1, Answered: 1}, stats.Questions)
	assert.Equal(t, int64(1), stats.UnreadNotifications)
}
