package question

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

const (
	minTitleLength = 5
	minBodyLength  = 10
)

type Service struct {
	repo     *Repository
	notifier *notify.Dispatcher
}

func NewService(repo *Repository, notifier *notify.Dispatcher) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, studentID uint, req CreateQuestionRequest) (*question.Question, *response.BusinessError) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)

	details := map[string]string{}
	if utf8.RuneCountInString(title) < minTitleLength {
		details["title"] = fmt.Sprintf("must be at least %d characters", minTitleLength)
	}
	if utf8.RuneCountInString(body) < minBodyLength {
		details["body"] = fmt.Sprintf("must be at least %d characters", minBodyLength)
	}
	if len(details) > 0 {
		return nil, response.ErrValidation("question is too short", details)
	}

	q := &question.Question{
		StudentID:  studentID,
		Title:      title,
		Body:       body,
		ModuleCode: strings.ToUpper(strings.TrimSpace(req.ModuleCode)),
		Status:     question.StatusOpen,
		Responses:  []question.Response{},
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, response.ErrInternal(err)
	}
	return q, nil
}

// List students only ever see their own questions
func (s *Service) List(ctx context.Context, reqID uint, reqRole string, p pagination.Params, status, module string) (pagination.Page[question.Question], *response.BusinessError) {
	f := ListFilter{Status: status, Module: strings.ToUpper(strings.TrimSpace(module))}
	if reqRole == userModel.RoleStudent {
		f.StudentID = reqID
	}
	questions, total, err := s.repo.List(ctx, p, f)
	if err != nil {
		return pagination.Page[question.Question]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(questions, p, total), nil
}

// Get hides other students' questions behind a 404
func (s *Service) Get(ctx context.Context, reqID uint, reqRole string, id uint) (*question.Question, *response.BusinessError) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("question")
		}
		return nil, response.ErrInternal(err)
	}
	if reqRole == userModel.RoleStudent && q.StudentID != reqID {
		return nil, response.ErrNotFound("question")
	}
	if q.Responses == nil {
		q.Responses = []question.Response{}
	}
	return q, nil
}

func (s *Service) Respond(ctx context.Context, tutorID uint, questionID uint, message string) (*question.Response, *response.BusinessError) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, response.ErrValidation("message is required", map[string]string{"message": "required"})
	}

	q, err := s.repo.FindByID(ctx, questionID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("question")
		}
		return nil, response.ErrInternal(err)
	}

	resp := &question.Response{QuestionID: q.ID, TutorID: tutorID, Message: message}
	if err := s.repo.AddResponse(ctx, resp); err != nil {
		return nil, response.ErrInternal(err)
	}

	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeQuestionResponse,
		Recipients: notify.QuestionResponseRecipients(q.StudentID, tutorID),
		Title:      "New response to: " + q.Title,
		Body:       notify.Preview(message),
		Metadata: map[string]any{
			"question_id": q.ID,
			"response_id": resp.ID,
			"link":        fmt.Sprintf("/questions/%d", q.ID),
		},
	})
	return resp, nil
}
