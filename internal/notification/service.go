package notification

import (
	"context"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uint, p pagination.Params, unreadOnly bool) (pagination.Page[notification.Notification], *response.BusinessError) {
	rows, total, err := s.repo.List(ctx, userID, p, unreadOnly)
	if err != nil {
		return pagination.Page[notification.Notification]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(rows, p, total), nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uint) (int64, *response.BusinessError) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, response.ErrInternal(err)
	}
	return n, nil
}

func (s *Service) findOwned(ctx context.Context, userID, id uint) (*notification.Notification, *response.BusinessError) {
	n, err := s.repo.FindOwned(ctx, userID, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("notification")
		}
		return nil, response.ErrInternal(err)
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id uint) (*notification.Notification, *response.BusinessError) {
	n, bizErr := s.findOwned(ctx, userID, id)
	if bizErr != nil {
		return nil, bizErr
	}
	if !n.Read {
		if err := s.repo.MarkRead(ctx, n); err != nil {
			return nil, response.ErrInternal(err)
		}
	}
	return n, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uint) (int64, *response.BusinessError) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, response.ErrInternal(err)
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uint) *response.BusinessError {
	n, bizErr := s.findOwned(ctx, userID, id)
	if bizErr != nil {
		return bizErr
	}
	if err := s.repo.Delete(ctx, n); err != nil {
		return response.ErrInternal(err)
	}
	return nil
}
