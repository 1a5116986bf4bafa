package tutor

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

func (s *Service) loadTutor(ctx context.Context, id uint) (*userModel.User, *response.BusinessError) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("tutor")
		}
		return nil, response.ErrInternal(err)
	}
	if u.Role != userModel.RoleTutor {
		return nil, response.ErrNotFound("tutor")
	}
	return u, nil
}

func toResponse(u *userModel.User, p *profile.TutorProfile) *ProfileResponse {
	resp := &ProfileResponse{User: u.Summary(), Modules: []string{}, Topics: []string{}}
	if p != nil {
		resp.Bio = p.Bio
		resp.Phone = p.Phone
		if p.Modules != nil {
			resp.Modules = p.Modules
		}
		if p.Topics != nil {
			resp.Topics = p.Topics
		}
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

// Profile returns the tutor's profile; withResources adds their uploads
func (s *Service) Profile(ctx context.Context, tutorID uint, withResources bool) (*ProfileResponse, *response.BusinessError) {
	u, bizErr := s.loadTutor(ctx, tutorID)
	if bizErr != nil {
		return nil, bizErr
	}

	p, err := s.repo.FindProfile(ctx, tutorID)
	if err != nil && !database.IsNotFound(err) {
		return nil, response.ErrInternal(err)
	}
	resp := toResponse(u, p)

	if withResources {
		resp.Resources, err = s.repo.ResourcesByUploader(ctx, tutorID)
		if err != nil {
			return nil, response.ErrInternal(err)
		}
	}
	return resp, nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (s *Service) UpsertProfile(ctx context.Context, tutorID uint, req UpsertProfileRequest) (*ProfileResponse, *response.BusinessError) {
	u, bizErr := s.loadTutor(ctx, tutorID)
	if bizErr != nil {
		return nil, bizErr
	}

	p := &profile.TutorProfile{
		UserID:  tutorID,
		Bio:     strings.TrimSpace(req.Bio),
		Phone:   strings.TrimSpace(req.Phone),
		Modules: cleanList(req.Modules),
		Topics:  cleanList(req.Topics),
	}
	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return nil, response.ErrInternal(err)
	}

	saved, err := s.repo.FindProfile(ctx, tutorID)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	return toResponse(u, saved), nil
}

func (s *Service) List(ctx context.Context, p pagination.Params) (pagination.Page[ProfileResponse], *response.BusinessError) {
	users, total, err := s.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[ProfileResponse]{}, response.ErrInternal(err)
	}

	ids := make([]uint, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	profiles, err := s.repo.FindProfiles(ctx, ids)
	if err != nil {
		return pagination.Page[ProfileResponse]{}, response.ErrInternal(err)
	}

	items := make([]ProfileResponse, len(users))
	for i := range users {
		var p *profile.TutorProfile
		if found, ok := profiles[users[i].ID]; ok {
			p = &found
		}
		items[i] = *toResponse(&users[i], p)
	}
	return pagination.NewPage(items, p, total), nil
}
