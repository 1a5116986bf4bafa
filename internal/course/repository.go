package course

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*course.Course, error) {
	var c course.Course
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&course.Course{}).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(ctx context.Context, c *course.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) Update(ctx context.Context, c *course.Course) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the course together with both enrollment sides
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&course.StudentCourse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&course.RosterEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course.Course{}, id).Error
	})
}

func (r *Repository) List(ctx context.Context, p pagination.Params) ([]course.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&course.Course{})
	query = p.Search(query, "code", "title", "description")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []course.Course
	err := p.Apply(query).Order("code ASC").Find(&courses).Error
	return courses, total, err
}

// AddToStudent adds the course to the student's list; repeats are no-ops
func (r *Repository) AddToStudent(ctx context.Context, studentID, courseID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&course.StudentCourse{StudentID: studentID, CourseID: courseID}).Error
}

// AddToRoster adds the student to the course roster; repeats are no-ops
func (r *Repository) AddToRoster(ctx context.Context, courseID, studentID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&course.RosterEntry{CourseID: courseID, StudentID: studentID}).Error
}

func (r *Repository) RemoveFromStudent(ctx context.Context, studentID, courseID uint) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&course.StudentCourse{}).Error
}

func (r *Repository) RemoveFromRoster(ctx context.Context, courseID, studentID uint) error {
	return r.db.WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Delete(&course.RosterEntry{}).Error
}

// Roster returns the users on the course roster ordered by name
func (r *Repository) Roster(ctx context.Context, courseID uint) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).
		Joins("JOIN course_rosters ON course_rosters.student_id = users.id").
		Where("course_rosters.course_id = ?", courseID).
		Order("users.name ASC, users.id ASC").
		Find(&users).Error
	return users, err
}
