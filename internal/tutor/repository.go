package tutor

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/profile"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindProfile(ctx context.Context, userID uint) (*profile.TutorProfile, error) {
	var p profile.TutorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProfiles maps user id to profile for the given tutors
func (r *Repository) FindProfiles(ctx context.Context, userIDs []uint) (map[uint]profile.TutorProfile, error) {
	out := make(map[uint]profile.TutorProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var rows []profile.TutorProfile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.UserID] = p
	}
	return out, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *profile.TutorProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bio", "phone", "modules", "topics", "updated_at"}),
	}).Create(p).Error
}

func (r *Repository) List(ctx context.Context, p pagination.Params) ([]userModel.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&userModel.User{}).Where("role = ?", userModel.RoleTutor)
	query = p.Search(query, "name", "email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.User
	err := p.Apply(query).Order("name ASC, id ASC").Find(&users).Error
	return users, total, err
}

// ResourcesByUploader lists every topic resource uploaded by userID, newest first
func (r *Repository) ResourcesByUploader(ctx context.Context, userID uint) ([]topic.Resource, error) {
	var resources []topic.Resource
	err := r.db.WithContext(ctx).
		Where("uploaded_by = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&resources).Error
	return resources, err
}
