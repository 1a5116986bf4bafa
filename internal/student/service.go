package student

import (
	"context"
	"strings"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/profile"
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

func (s *Service) loadStudent(ctx context.Context, id uint) (*userModel.User, *response.BusinessError) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("student")
		}
		return nil, response.ErrInternal(err)
	}
	if u.Role != userModel.RoleStudent {
		return nil, response.ErrNotFound("student")
	}
	return u, nil
}

// Profile returns an empty profile when the student never saved one
func (s *Service) Profile(ctx context.Context, studentID uint) (*ProfileResponse, *response.BusinessError) {
	u, bizErr := s.loadStudent(ctx, studentID)
	if bizErr != nil {
		return nil, bizErr
	}

	resp := &ProfileResponse{User: u.Summary()}
	p, err := s.repo.FindProfile(ctx, studentID)
	switch {
	case err == nil:
		resp.StudentNumber = p.StudentNumber
		resp.Year = p.Year
		resp.Phone = p.Phone
		resp.Bio = p.Bio
		resp.EmergencyContact = EmergencyContact{Name: p.EmergencyName, Phone: p.EmergencyPhone}
		resp.UpdatedAt = &p.UpdatedAt
	case !database.IsNotFound(err):
		return nil, response.ErrInternal(err)
	}

	resp.Courses, err = s.repo.CourseIDs(ctx, studentID)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	return resp, nil
}

func (s *Service) UpsertProfile(ctx context.Context, studentID uint, req UpsertProfileRequest) (*ProfileResponse, *response.BusinessError) {
	if _, bizErr := s.loadStudent(ctx, studentID); bizErr != nil {
		return nil, bizErr
	}

	p := &profile.StudentProfile{
		UserID:         studentID,
		StudentNumber:  strings.TrimSpace(req.StudentNumber),
		Year:           req.Year,
		Phone:          strings.TrimSpace(req.Phone),
		Bio:            strings.TrimSpace(req.Bio),
		EmergencyName:  strings.TrimSpace(req.EmergencyContact.Name),
		EmergencyPhone: strings.TrimSpace(req.EmergencyContact.Phone),
	}
	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return nil, response.ErrInternal(err)
	}
	return s.Profile(ctx, studentID)
}

func (s *Service) List(ctx context.Context, p pagination.Params) (pagination.Page[ListItem], *response.BusinessError) {
	items, total, err := s.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[ListItem]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(items, p, total), nil
}
