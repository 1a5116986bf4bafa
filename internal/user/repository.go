package user

import (
	"context"

	"gorm.io/gorm"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

// Repository is the credential store; other modules use it for user lookups
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail expects an already lower-cased email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []uint) ([]userModel.User, error) {
	var users []userModel.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// List pages users, optionally filtered by role, searching name and email
func (r *Repository) List(ctx context.Context, p pagination.Params, role string) ([]userModel.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&userModel.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	query = p.Search(query, "name", "email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.User
	err := p.Apply(query).Order("id ASC").Find(&users).Error
	return users, total, err
}

func (r *Repository) UpdateName(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).Model(&userModel.User{}).Where("id = ?", id).Update("name", name).Error
}

func (r *Repository) UpdateRole(ctx context.Context, id uint, role string) error {
	return r.db.WithContext(ctx).Model(&userModel.User{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes only the user row; records referencing the id are left as they are
func (r *Repository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&userModel.User{}, id)
	return result.RowsAffected, result.Error
}
