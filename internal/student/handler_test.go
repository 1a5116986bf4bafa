package student

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func TestStudentProfile(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB, testutils.WithName("Alice"))
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)
	tutorTok := apptest.Token(t, deps, tutor.ID, tutor.Role)

	c := testutils.CreateTestCourse(deps.DB)
	require.NoError(t, deps.DB.Create(&course.StudentCourse{StudentID: alice.ID, CourseID: c.ID}).Error)

	t.Run("empty profile before first write", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodGet, "/api/students/me", nil, aliceTok)
		require.Equal(t, http.StatusOK, w.Code)
		p := apptest.Data[ProfileResponse](t, w)
		assert.Equal(t, alice.ID, p.User.ID)
		assert.Empty(t, p.StudentNumber)
		assert.Nil(t, p.UpdatedAt)
		assert.Equal(t, []uint{c.ID}, p.Courses)
	})

	t.Run("upsert creates then overwrites", func(t *testing.T) {
		body := map[string]any{
			"student_number":    "BC0001",
			"year":              2,
			"emergency_contact": map[string]string{"name": "Mom", "phone": "0821234567"},
		}
		w := apptest.Request(t, r, http.MethodPut, "/api/students/me", body, aliceTok)
		require.Equal(t, http.StatusOK, w.Code)
		p := apptest.Data[ProfileResponse](t, w)
		assert.Equal(t, "BC0001", p.StudentNumber)
		assert.Equal(t, "Mom", p.EmergencyContact.Name)

		body["year"] = 3
		w = apptest.Request(t, r, http.MethodPut, "/api/students/me", body, aliceTok)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, apptest.Data[ProfileResponse](t, w).Year)

		var count int64
		deps.DB.Table("student_profiles").Where("user_id = ?", alice.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("year out of range", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodPut, "/api/students/me", map[string]any{"year": 9}, aliceTok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("only students have a own profile", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodGet, "/api/students/me", nil, tutorTok)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("tutor reads a student", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodGet, "/api/students/"+fmt.Sprint(alice.ID), nil, tutorTok)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "BC0001", apptest.Data[ProfileResponse](t, w).StudentNumber)

		w = apptest.Request(t, r, http.MethodGet, "/api/students/"+fmt.Sprint(tutor.ID), nil, tutorTok)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStudentList(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	admin := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleAdmin))
	testutils.CreateTestUser(deps.DB, testutils.WithName("Alice"))
	bob := testutils.CreateTestUser(deps.DB, testutils.WithName("Bob"))
	testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))
	adminTok := apptest.Token(t, deps, admin.ID, admin.Role)

	bobTok := apptest.Token(t, deps, bob.ID, bob.Role)
	w := apptest.Request(t, r, http.MethodPut, "/api/students/me", map[string]any{"student_number": "BC7777"}, bobTok)
	require.Equal(t, http.StatusOK, w.Code)

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"all students", "", 2},
		{"by student number", "?q=bc777", 1},
		{"by name", "?q=alice", 1},
		{"no match", "?q=zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apptest.Request(t, r, http.MethodGet, "/api/students"+tt.query, nil, adminTok)
			require.Equal(t, http.StatusOK, w.Code)
			page := apptest.Data[pagination.Page[ListItem]](t, w)
			assert.Equal(t, tt.total, page.Total)
			assert.Len(t, page.Items, int(tt.total))
		})
	}

	w = apptest.Request(t, r, http.MethodGet, "/api/students", nil, bobTok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
