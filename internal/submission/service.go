package submission

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/storage"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo     *Repository
	store    storage.Store
	notifier *notify.Dispatcher
	maxSize  int64
	now      func() time.Time
}

func NewService(repo *Repository, store storage.Store, notifier *notify.Dispatcher, maxSize int64) *Service {
	return &Service{repo: repo, store: store, notifier: notifier, maxSize: maxSize, now: time.Now}
}

// Create stores the optional file first; the record is only written when
// the upload succeeded
func (s *Service) Create(ctx context.Context, studentID uint, form CreateSubmissionForm, fh *multipart.FileHeader) (*submission.Submission, *response.BusinessError) {
	sub := &submission.Submission{
		StudentID:  studentID,
		CourseCode: strings.ToUpper(strings.TrimSpace(form.CourseCode)),
		Title:      strings.TrimSpace(form.Title),
		Status:     submission.StatusSubmitted,
	}
	if sub.CourseCode == "" || sub.Title == "" {
		return nil, response.ErrValidation("course_code and title are required", map[string]string{
			"course_code": "required",
			"title":       "required",
		})
	}

	if fh != nil {
		if fh.Size > s.maxSize {
			return nil, response.ErrValidation(
				fmt.Sprintf("file %s exceeds the %d byte limit", fh.Filename, s.maxSize),
				map[string]string{"file": "too large"},
			)
		}
		obj, err := s.save(ctx, fmt.Sprintf("submissions/%d", studentID), fh)
		if err != nil {
			return nil, response.ErrInternal(err)
		}
		sub.FileName = fh.Filename
		sub.FileURL = obj.URL
		sub.FileKey = obj.Key
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		if sub.FileKey != "" {
			if delErr := s.store.Delete(ctx, sub.FileKey); delErr != nil {
				logger.FromContext(ctx).Warn(ctx, "failed to delete orphaned upload", zap.String("key", sub.FileKey), zap.Error(delErr))
			}
		}
		return nil, response.ErrInternal(err)
	}
	return sub, nil
}

func (s *Service) save(ctx context.Context, prefix string, fh *multipart.FileHeader) (*storage.Object, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.store.Save(ctx, storage.ObjectKey(prefix, fh.Filename, s.now()), f, fh.Size, contentType)
}

func (s *Service) List(ctx context.Context, reqID uint, reqRole string, p pagination.Params, status, courseCode string) (pagination.Page[submission.Submission], *response.BusinessError) {
	if status != "" && !submission.IsValidStatus(status) {
		return pagination.Page[submission.Submission]{}, response.ErrValidation("invalid status", map[string]string{"status": "must be submitted, graded or returned"})
	}
	var studentID uint
	if reqRole == userModel.RoleStudent {
		studentID = reqID
	}
	items, total, err := s.repo.List(ctx, p, studentID, status, strings.ToUpper(strings.TrimSpace(courseCode)))
	if err != nil {
		return pagination.Page[submission.Submission]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(items, p, total), nil
}

func (s *Service) Get(ctx context.Context, reqID uint, reqRole string, id uint) (*submission.Submission, *response.BusinessError) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("submission")
		}
		return nil, response.ErrInternal(err)
	}
	if reqRole == userModel.RoleStudent && sub.StudentID != reqID {
		return nil, response.ErrNotFound("submission")
	}
	return sub, nil
}

// Grade records the grader and time and tells the student exactly once
func (s *Service) Grade(ctx context.Context, graderID uint, id uint, req GradeRequest) (*submission.Submission, *response.BusinessError) {
	if !submission.IsValidStatus(req.Status) {
		return nil, response.ErrValidation("invalid status", map[string]string{"status": "must be submitted, graded or returned"})
	}
	if req.Grade != nil && (*req.Grade < 0 || *req.Grade > 100) {
		return nil, response.ErrValidation("grade must be between 0 and 100", map[string]string{"grade": "must be between 0 and 100"})
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("submission")
		}
		return nil, response.ErrInternal(err)
	}

	now := s.now()
	sub.Status = req.Status
	if req.Grade != nil {
		grade := *req.Grade
		sub.Grade = &grade
	}
	if req.Feedback != nil {
		sub.Feedback = strings.TrimSpace(*req.Feedback)
	}
	sub.GradedBy = &graderID
	sub.GradedAt = &now

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, response.ErrInternal(err)
	}

	body := fmt.Sprintf("Your submission %q for %s is now %s.", sub.Title, sub.CourseCode, sub.Status)
	if sub.Grade != nil {
		body = fmt.Sprintf("Your submission %q for %s is now %s with a grade of %g.", sub.Title, sub.CourseCode, sub.Status, *sub.Grade)
	}
	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeSubmission,
		Recipients: notify.SubmissionRecipients(sub.StudentID),
		Title:      "Submission " + sub.Status,
		Body:       body,
		Metadata: map[string]any{
			"submission_id": sub.ID,
			"status":        sub.Status,
			"link":          fmt.Sprintf("/submissions/%d", sub.ID),
		},
	})
	return sub, nil
}
