package submission

import (
	"context"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*submission.Submission, error) {
	var s submission.Submission
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// List studentID 0 lists every student's submissions
func (r *Repository) List(ctx context.Context, p pagination.Params, studentID uint, status, courseCode string) ([]submission.Submission, int64, error) {
	query := r.db.WithContext(ctx).Model(&submission.Submission{})
	if studentID != 0 {
		query = query.Where("student_id = ?", studentID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if courseCode != "" {
		query = query.Where("course_code = ?", courseCode)
	}
	query = p.Search(query, "title", "course_code")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []submission.Submission
	err := p.Apply(query).Order("created_at DESC, id DESC").Find(&items).Error
	return items, total, err
}
