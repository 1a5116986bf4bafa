package student

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/profile"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindProfile returns gorm.ErrRecordNotFound until the first write
func (r *Repository) FindProfile(ctx context.Context, userID uint) (*profile.StudentProfile, error) {
	var p profile.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile inserts or overwrites the profile keyed by user_id
func (r *Repository) UpsertProfile(ctx context.Context, p *profile.StudentProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_number", "year", "phone", "bio", "emergency_name", "emergency_phone", "updated_at",
		}),
	}).Create(p).Error
}

func (r *Repository) CourseIDs(ctx context.Context, studentID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&course.StudentCourse{}).
		Where("student_id = ?", studentID).
		Order("course_id ASC").
		Pluck("course_id", &ids).Error
	return ids, err
}

// List pages student users joined with their (optional) profile
func (r *Repository) List(ctx context.Context, p pagination.Params) ([]ListItem, int64, error) {
	query := r.db.WithContext(ctx).Table("users").
		Joins("LEFT JOIN student_profiles ON student_profiles.user_id = users.id").
		Where("users.role = ?", userModel.RoleStudent)
	query = p.Search(query, "users.name", "users.email", "student_profiles.student_number")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []ListItem
	err := p.Apply(query).
		Select("users.id, users.name, users.email, " +
			"COALESCE(student_profiles.student_number, '') AS student_number, " +
			"COALESCE(student_profiles.year, 0) AS year").
		Order("users.id ASC").
		Scan(&items).Error
	return items, total, err
}
