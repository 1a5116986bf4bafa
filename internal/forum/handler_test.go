package forum

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/forum"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func TestForumThreads(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	alice := testutils.CreateTestUser(deps.DB)
	bob := testutils.CreateTestUser(deps.DB)
	admin := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleAdmin))
	aliceTok := apptest.Token(t, deps, alice.ID, alice.Role)
	bobTok := apptest.Token(t, deps, bob.ID, bob.Role)
	adminTok := apptest.Token(t, deps, admin.ID, admin.Role)

	body := map[string]string{"category": " General ", "title": "Exam tips", "body": "Share what worked for you"}
	w := apptest.Request(t, r, http.MethodPost, "/api/forum/threads", body, aliceTok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := apptest.Data[ThreadDetail](t, w)
	assert.Equal(t, "general", created.Category)
	require.Len(t, created.Posts, 1)
	threadPath := "/api/forum/threads/" + fmt.Sprint(created.ID)

	w = apptest.Request(t, r, http.MethodPost, "/api/forum/threads", map[string]string{"category": "modules", "title": "PRG281 notes", "body": "Anyone?"}, bobTok)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("anonymous list and filters", func(t *testing.T) {
		tests := []struct {
			query string
			total int64
		}{
			{"", 2},
			{"?category=GENERAL", 1},
			{"?q=prg", 1},
			{"?category=general&q=prg", 0},
		}
		for _, tt := range tests {
			w := apptest.Request(t, r, http.MethodGet, "/api/forum/threads"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.total, apptest.Data[pagination.Page[forum.Thread]](t, w).Total, tt.query)
		}
	})

	t.Run("creating requires a session", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodPost, "/api/forum/threads", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("replies notify the author unless self", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodPost, threadPath+"/posts", map[string]string{"body": "Past papers help"}, bobTok)
		require.Equal(t, http.StatusCreated, w.Code)
		w = apptest.Request(t, r, http.MethodPost, threadPath+"/posts", map[string]string{"body": "Thanks Bob"}, aliceTok)
		require.Equal(t, http.StatusCreated, w.Code)
		deps.Notifier.Wait()

		var rows []notification.Notification
		require.NoError(t, deps.DB.Where("type = ?", notification.TypeForum).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, alice.ID, rows[0].UserID)
		assert.Equal(t, "Past papers help", rows[0].Body)

		w = apptest.Request(t, r, http.MethodGet, "/api/forum/threads", nil, "")
		page := apptest.Data[pagination.Page[forum.Thread]](t, w)
		require.NotEmpty(t, page.Items)
		assert.Equal(t, created.ID, page.Items[0].ID)
	})

	t.Run("read marks are a set", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := apptest.Request(t, r, http.MethodPost, threadPath+"/read", nil, bobTok)
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := apptest.Request(t, r, http.MethodGet, threadPath, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		detail := apptest.Data[ThreadDetail](t, w)
		require.Len(t, detail.Posts, 3)
		assert.Equal(t, "Share what worked for you", detail.Posts[0].Body)
		assert.Equal(t, "Thanks Bob", detail.Posts[2].Body)
		for _, post := range detail.Posts {
			assert.Equal(t, []uint{bob.ID}, post.ReadBy)
		}
	})

	t.Run("only author or admin deletes a post", func(t *testing.T) {
		var post forum.Post
		require.NoError(t, deps.DB.Where("thread_id = ? AND author_id = ?", created.ID, bob.ID).First(&post).Error)
		path := "/api/forum/posts/" + fmt.Sprint(post.ID)

		w := apptest.Request(t, r, http.MethodDelete, path, nil, aliceTok)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = apptest.Request(t, r, http.MethodDelete, path, nil, adminTok)
		require.Equal(t, http.StatusOK, w.Code)

		w = apptest.Request(t, r, http.MethodDelete, path, nil, adminTok)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown thread", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodPost, "/api/forum/threads/9999/posts", map[string]string{"body": "hi"}, bobTok)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
