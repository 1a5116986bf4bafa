package admin

import (
	"context"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type groupCount struct {
	Name  string
	Total int64
}

// countBy groups model rows by column
func (r *Repository) countBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(model).
		Select(column + " AS name, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Total
	}
	return out, nil
}

func (r *Repository) count(ctx context.Context, model any, query ...any) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(model)
	if len(query) > 0 {
		db = db.Where(query[0], query[1:]...)
	}
	err := db.Count(&n).Error
	return n, err
}

func (r *Repository) UsersByRole(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, &userModel.User{}, "role")
}

func (r *Repository) SubmissionsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, &submission.Submission{}, "status")
}

func (r *Repository) QuestionsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, &question.Question{}, "status")
}

func (r *Repository) Courses(ctx context.Context) (int64, error) {
	return r.count(ctx, &course.Course{})
}

func (r *Repository) Topics(ctx context.Context) (int64, error) {
	return r.count(ctx, &topic.Topic{})
}

func (r *Repository) UnreadNotifications(ctx context.Context) (int64, error) {
	return r.count(ctx, &notification.Notification{}, "read = ?", false)
}
