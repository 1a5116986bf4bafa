package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/forum"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo     *Repository
	notifier *notify.Dispatcher
	now      func() time.Time
}

func NewService(repo *Repository, notifier *notify.Dispatcher) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func (s *Service) ListThreads(ctx context.Context, p pagination.Params, category string) (pagination.Page[forum.Thread], *response.BusinessError) {
	threads, total, err := s.repo.ListThreads(ctx, p, normalizeCategory(category))
	if err != nil {
		return pagination.Page[forum.Thread]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(threads, p, total), nil
}

func (s *Service) CreateThread(ctx context.Context, authorID uint, req CreateThreadRequest) (*ThreadDetail, *response.BusinessError) {
	category := normalizeCategory(req.Category)
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if category == "" || title == "" || body == "" {
		return nil, response.ErrValidation("category, title and body are required", nil)
	}

	now := s.now()
	t := &forum.Thread{Category: category, Title: title, AuthorID: authorID, LastPostAt: now}
	first := &forum.Post{AuthorID: authorID, Body: body}
	if err := s.repo.CreateThread(ctx, t, first); err != nil {
		return nil, response.ErrInternal(err)
	}
	return &ThreadDetail{Thread: *t, Posts: []PostView{{Post: *first, ReadBy: []uint{}}}}, nil
}

func (s *Service) GetThread(ctx context.Context, id uint) (*ThreadDetail, *response.BusinessError) {
	t, err := s.repo.FindThreadWithPosts(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("thread")
		}
		return nil, response.ErrInternal(err)
	}

	detail := &ThreadDetail{Thread: *t, Posts: make([]PostView, len(t.Posts))}
	detail.Thread.Posts = nil
	for i, post := range t.Posts {
		readBy := make([]uint, len(post.Reads))
		for j, read := range post.Reads {
			readBy[j] = read.UserID
		}
		detail.Posts[i] = PostView{Post: post, ReadBy: readBy}
	}
	return detail, nil
}

// Reply appends a post and tells the thread author unless they replied
func (s *Service) Reply(ctx context.Context, authorID, threadID uint, body string) (*forum.Post, *response.BusinessError) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, response.ErrValidation("body is required", map[string]string{"body": "required"})
	}

	t, err := s.repo.FindThread(ctx, threadID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("thread")
		}
		return nil, response.ErrInternal(err)
	}

	post := &forum.Post{ThreadID: t.ID, AuthorID: authorID, Body: body}
	if err := s.repo.AddPost(ctx, post, s.now()); err != nil {
		return nil, response.ErrInternal(err)
	}

	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeForum,
		Recipients: notify.ForumReplyRecipients(t.AuthorID, authorID),
		Title:      "New reply in " + t.Title,
		Body:       notify.Preview(body),
		Metadata: map[string]any{
			"thread_id": t.ID,
			"post_id":   post.ID,
			"link":      fmt.Sprintf("/forum/threads/%d", t.ID),
		},
	})
	return post, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, threadID uint) (int, *response.BusinessError) {
	if _, err := s.repo.FindThread(ctx, threadID); err != nil {
		if database.IsNotFound(err) {
			return 0, response.ErrNotFound("thread")
		}
		return 0, response.ErrInternal(err)
	}
	n, err := s.repo.MarkThreadRead(ctx, threadID, userID)
	if err != nil {
		return 0, response.ErrInternal(err)
	}
	return n, nil
}

func (s *Service) DeletePost(ctx context.Context, reqID uint, reqRole string, postID uint) *response.BusinessError {
	post, err := s.repo.FindPost(ctx, postID)
	if err != nil {
		if database.IsNotFound(err) {
			return response.ErrNotFound("post")
		}
		return response.ErrInternal(err)
	}
	if !permission.CanMutate(reqID, reqRole, post.AuthorID) {
		return response.ErrForbidden("only the author or an admin may delete this post")
	}
	if err := s.repo.DeletePost(ctx, post.ID); err != nil {
		return response.ErrInternal(err)
	}
	return nil
}
