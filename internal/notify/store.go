package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
)

// Store persists notification rows
type Store interface {
	CreateBatch(ctx context.Context, rows []notification.Notification) ([]notification.Notification, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateBatch(ctx context.Context, rows []notification.Notification) ([]notification.Notification, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
