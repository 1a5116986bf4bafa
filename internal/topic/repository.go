package topic

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*topic.Topic, error) {
	var t topic.Topic
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindWithChildren loads resources (newest first) and broadcasts (oldest first)
func (r *Repository) FindWithChildren(ctx context.Context, id uint) (*topic.Topic, error) {
	var t topic.Topic
	err := r.db.WithContext(ctx).
		Preload("Resources", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at DESC, id DESC")
		}).
		Preload("Broadcasts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) List(ctx context.Context, p pagination.Params, module string) ([]topic.Topic, int64, error) {
	query := r.db.WithContext(ctx).Model(&topic.Topic{})
	if module != "" {
		query = query.Where("module_code = ?", module)
	}
	query = p.Search(query, "title", "body", "module_code")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []topic.Topic
	err := p.Apply(query).Order("created_at DESC, id DESC").Find(&topics).Error
	return topics, total, err
}

func (r *Repository) Create(ctx context.Context, t *topic.Topic) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repository) Update(ctx context.Context, t *topic.Topic) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

// Delete removes the topic and its children, returning the storage keys of
// the removed resources
func (r *Repository) Delete(ctx context.Context, id uint) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&topic.Resource{}).Where("topic_id = ?", id).Pluck("storage_key", &keys).Error; err != nil {
			return err
		}
		for _, child := range []any{&topic.Resource{}, &topic.Broadcast{}, &topic.Subscriber{}} {
			if err := tx.Where("topic_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&topic.Topic{}, id).Error
	})
	return keys, err
}

func (r *Repository) Subscribe(ctx context.Context, topicID, userID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&topic.Subscriber{TopicID: topicID, UserID: userID}).Error
}

func (r *Repository) Unsubscribe(ctx context.Context, topicID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Delete(&topic.Subscriber{}).Error
}

func (r *Repository) SubscriberIDs(ctx context.Context, topicID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&topic.Subscriber{}).
		Where("topic_id = ?", topicID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *Repository) CountSubscribers(ctx context.Context, topicID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&topic.Subscriber{}).Where("topic_id = ?", topicID).Count(&count).Error
	return count, err
}

func (r *Repository) IsSubscribed(ctx context.Context, topicID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&topic.Subscriber{}).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateResources(ctx context.Context, resources []topic.Resource) error {
	return r.db.WithContext(ctx).Create(&resources).Error
}

func (r *Repository) FindResource(ctx context.Context, topicID, resourceID uint) (*topic.Resource, error) {
	var res topic.Resource
	err := r.db.WithContext(ctx).Where("id = ? AND topic_id = ?", resourceID, topicID).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Repository) DeleteResource(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&topic.Resource{}, id).Error
}

func (r *Repository) CreateBroadcast(ctx context.Context, b *topic.Broadcast) error {
	return r.db.WithContext(ctx).Create(b).Error
}
