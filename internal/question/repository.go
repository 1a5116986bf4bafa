package question

import (
	"context"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, q *question.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*question.Question, error) {
	var q question.Question
	err := r.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListFilter studentID 0 lists every student's questions
type ListFilter struct {
	StudentID uint
	Status    string
	Module    string
}

func (r *Repository) List(ctx context.Context, p pagination.Params, f ListFilter) ([]question.Question, int64, error) {
	query := r.db.WithContext(ctx).Model(&question.Question{})
	if f.StudentID != 0 {
		query = query.Where("student_id = ?", f.StudentID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Module != "" {
		query = query.Where("module_code = ?", f.Module)
	}
	query = p.Search(query, "title", "body")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []question.Question
	err := p.Apply(query).Order("created_at DESC, id DESC").Find(&questions).Error
	return questions, total, err
}

// AddResponse appends the response and marks the question answered
func (r *Repository) AddResponse(ctx context.Context, resp *question.Response) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resp).Error; err != nil {
			return err
		}
		return tx.Model(&question.Question{}).
			Where("id = ?", resp.QuestionID).
			Update("status", question.StatusAnswered).Error
	})
}
