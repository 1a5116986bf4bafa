package course

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo  *Repository
	users *user.Repository
}

func NewService(repo *Repository, users *user.Repository) *Service {
	return &Service{repo: repo, users: users}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Service) Get(ctx context.Context, id uint) (*course.Course, *response.BusinessError) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("course")
		}
		return nil, response.ErrInternal(err)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, p pagination.Params) (pagination.Page[course.Course], *response.BusinessError) {
	courses, total, err := s.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[course.Course]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(courses, p, total), nil
}

func (s *Service) checkCode(ctx context.Context, code string, excludeID uint) *response.BusinessError {
	if code == "" {
		return response.ErrValidation("code is required", map[string]string{"code": "required"})
	}
	exists, err := s.repo.CodeExists(ctx, code, excludeID)
	if err != nil {
		return response.ErrInternal(err)
	}
	if exists {
		return response.ErrConflict("course code already exists")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateCourseRequest) (*course.Course, *response.BusinessError) {
	c := &course.Course{
		Code:        normalizeCode(req.Code),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Credits:     req.Credits,
	}
	if c.Title == "" {
		return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
	}
	if bizErr := s.checkCode(ctx, c.Code, 0); bizErr != nil {
		return nil, bizErr
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, response.ErrConflict("course code already exists")
		}
		return nil, response.ErrInternal(err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateCourseRequest) (*course.Course, *response.BusinessError) {
	c, bizErr := s.Get(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.Code != nil {
		code := normalizeCode(*req.Code)
		if code != c.Code {
			if bizErr := s.checkCode(ctx, code, c.ID); bizErr != nil {
				return nil, bizErr
			}
			c.Code = code
		}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
		}
		c.Title = title
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.Credits != nil {
		c.Credits = *req.Credits
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, response.ErrConflict("course code already exists")
		}
		return nil, response.ErrInternal(err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) *response.BusinessError {
	if _, bizErr := s.Get(ctx, id); bizErr != nil {
		return bizErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return response.ErrInternal(err)
	}
	return nil
}

func (s *Service) loadStudent(ctx context.Context, id uint) *response.BusinessError {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return response.ErrNotFound("student")
		}
		return response.ErrInternal(err)
	}
	if u.Role != userModel.RoleStudent {
		return response.ErrValidation("user is not a student", map[string]string{"student_id": "must reference a student"})
	}
	return nil
}

// Enroll writes the student's course list and the course roster separately.
// A failure between the two leaves them out of step; repeating the call
// repairs it.
func (s *Service) Enroll(ctx context.Context, courseID, studentID uint) (*EnrollmentResponse, *response.BusinessError) {
	if _, bizErr := s.Get(ctx, courseID); bizErr != nil {
		return nil, bizErr
	}
	if bizErr := s.loadStudent(ctx, studentID); bizErr != nil {
		return nil, bizErr
	}

	if err := s.repo.AddToStudent(ctx, studentID, courseID); err != nil {
		return nil, response.ErrInternal(err)
	}
	if err := s.repo.AddToRoster(ctx, courseID, studentID); err != nil {
		logger.FromContext(ctx).Warn(ctx, "roster update failed after student course update",
			zap.Uint("course_id", courseID), zap.Uint("student_id", studentID), zap.Error(err))
		return nil, response.ErrInternal(err)
	}
	return &EnrollmentResponse{CourseID: courseID, StudentID: studentID}, nil
}

func (s *Service) Unenroll(ctx context.Context, courseID, studentID uint) *response.BusinessError {
	if _, bizErr := s.Get(ctx, courseID); bizErr != nil {
		return bizErr
	}
	if err := s.repo.RemoveFromStudent(ctx, studentID, courseID); err != nil {
		return response.ErrInternal(err)
	}
	if err := s.repo.RemoveFromRoster(ctx, courseID, studentID); err != nil {
		logger.FromContext(ctx).Warn(ctx, "roster removal failed after student course removal",
			zap.Uint("course_id", courseID), zap.Uint("student_id", studentID), zap.Error(err))
		return response.ErrInternal(err)
	}
	return nil
}

func (s *Service) Roster(ctx context.Context, courseID uint) ([]userModel.Summary, *response.BusinessError) {
	if _, bizErr := s.Get(ctx, courseID); bizErr != nil {
		return nil, bizErr
	}
	users, err := s.repo.Roster(ctx, courseID)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	out := make([]userModel.Summary, len(users))
	for i := range users {
		out[i] = users[i].Summary()
	}
	return out, nil
}
