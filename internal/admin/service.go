package admin

import (
	"context"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// withKeys makes sure every known key is present, even at zero
func withKeys(m map[string]int64, keys ...string) map[string]int64 {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			m[k] = 0
		}
	}
	return m
}

func (s *Service) Stats(ctx context.Context) (*Stats, *response.BusinessError) {
	users, err := s.repo.UsersByRole(ctx)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	submissions, err := s.repo.SubmissionsByStatus(ctx)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	questions, err := s.repo.QuestionsByStatus(ctx)
	if err != nil {
		return nil, response.ErrInternal(err)
	}

	stats := &Stats{
		UsersByRole:         withKeys(users, userModel.RoleStudent, userModel.RoleTutor, userModel.RoleAdmin),
		SubmissionsByStatus: withKeys(submissions, submission.StatusSubmitted, submission.StatusGraded, submission.StatusReturned),
		Questions: QuestionStats{
			Open:     questions[question.StatusOpen],
			Answered: questions[question.StatusAnswered],
		},
	}
	for _, n := range users {
		stats.TotalUsers += n
	}

	if stats.Courses, err = s.repo.Courses(ctx); err != nil {
		return nil, response.ErrInternal(err)
	}
	if stats.Topics, err = s.repo.Topics(ctx); err != nil {
		return nil, response.ErrInternal(err)
	}
	if stats.UnreadNotifications, err = s.repo.UnreadNotifications(ctx); err != nil {
		return nil, response.ErrInternal(err)
	}
	return stats, nil
}
