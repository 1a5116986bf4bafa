package user

import (
	"context"
	"strings"
	"unicode/utf8"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ValidateName trims name and checks the 2-100 character rule
func ValidateName(name string) (string, *response.BusinessError) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return "", response.ErrValidation("name must be between 2 and 100 characters",
			map[string]string{"name": "length must be 2-100"})
	}
	return name, nil
}

func (s *Service) List(ctx context.Context, p pagination.Params, role string) (pagination.Page[userModel.Summary], *response.BusinessError) {
	if role != "" && !permission.IsValidRole(role) {
		return pagination.Page[userModel.Summary]{}, response.ErrValidation("invalid role filter", nil)
	}
	users, total, err := s.repo.List(ctx, p, role)
	if err != nil {
		return pagination.Page[userModel.Summary]{}, response.ErrInternal(err)
	}

	items := make([]userModel.Summary, 0, len(users))
	for i := range users {
		items = append(items, users[i].Summary())
	}
	return pagination.NewPage(items, p, total), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*userModel.Summary, *response.BusinessError) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("user")
		}
		return nil, response.ErrInternal(err)
	}
	summary := u.Summary()
	return &summary, nil
}

// UpdateName owner-or-admin
func (s *Service) UpdateName(ctx context.Context, requesterID uint, requesterRole string, targetID uint, name string) (*userModel.Summary, *response.BusinessError) {
	if !permission.CanMutate(requesterID, requesterRole, targetID) {
		return nil, response.ErrForbidden("you can only update your own profile")
	}
	name, bizErr := ValidateName(name)
	if bizErr != nil {
		return nil, bizErr
	}
	if _, bizErr := s.Get(ctx, targetID); bizErr != nil {
		return nil, bizErr
	}
	if err := s.repo.UpdateName(ctx, targetID, name); err != nil {
		return nil, response.ErrInternal(err)
	}
	return s.Get(ctx, targetID)
}

// ChangeRole is the explicit admin-only role change
func (s *Service) ChangeRole(ctx context.Context, targetID uint, role string) (*userModel.Summary, *response.BusinessError) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !permission.IsValidRole(role) {
		return nil, response.ErrValidation("role must be one of student, tutor, admin", nil)
	}
	if _, bizErr := s.Get(ctx, targetID); bizErr != nil {
		return nil, bizErr
	}
	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, response.ErrInternal(err)
	}
	return s.Get(ctx, targetID)
}

// Delete hard-deletes the user without cascading
func (s *Service) Delete(ctx context.Context, requesterID, targetID uint) *response.BusinessError {
	if requesterID == targetID {
		return response.ErrValidation("you cannot delete your own account", nil)
	}
	affected, err := s.repo.Delete(ctx, targetID)
	if err != nil {
		return response.ErrInternal(err)
	}
	if affected == 0 {
		return response.ErrNotFound("user")
	}
	return nil
}
