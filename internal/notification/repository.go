package notification

import (
	"context"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, userID uint, p pagination.Params, unreadOnly bool) ([]notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&notification.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []notification.Notification
	err := p.Apply(query).Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, total, err
}

func (r *Repository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// FindOwned returns gorm.ErrRecordNotFound for other users' rows
func (r *Repository) FindOwned(ctx context.Context, userID, id uint) (*notification.Notification, error) {
	var n notification.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) MarkRead(ctx context.Context, n *notification.Notification) error {
	n.Read = true
	return r.db.WithContext(ctx).Model(n).Update("read", true).Error
}

func (r *Repository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *Repository) Delete(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Delete(n).Error
}
