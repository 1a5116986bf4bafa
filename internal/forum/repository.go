package forum

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/forum"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateThread writes the thread and its opening post together
func (r *Repository) CreateThread(ctx context.Context, t *forum.Thread, first *forum.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(t).Error; err != nil {
			return err
		}
		first.ThreadID = t.ID
		return tx.Create(first).Error
	})
}

func (r *Repository) FindThread(ctx context.Context, id uint) (*forum.Thread, error) {
	var t forum.Thread
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindThreadWithPosts loads posts oldest first with their read-by sets
func (r *Repository) FindThreadWithPosts(ctx context.Context, id uint) (*forum.Thread, error) {
	var t forum.Thread
	err := r.db.WithContext(ctx).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Posts.Reads", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id ASC")
		}).
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListThreads(ctx context.Context, p pagination.Params, category string) ([]forum.Thread, int64, error) {
	query := r.db.WithContext(ctx).Model(&forum.Thread{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	query = p.Search(query, "title")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var threads []forum.Thread
	err := p.Apply(query).Order("last_post_at DESC, id DESC").Find(&threads).Error
	return threads, total, err
}

// AddPost appends the post and bumps the thread's last activity
func (r *Repository) AddPost(ctx context.Context, post *forum.Post, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&forum.Thread{}).Where("id = ?", post.ThreadID).Update("last_post_at", at).Error
	})
}

func (r *Repository) FindPost(ctx context.Context, id uint) (*forum.Post, error) {
	var post forum.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *Repository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&forum.PostRead{}).Error; err != nil {
			return err
		}
		return tx.Delete(&forum.Post{}, id).Error
	})
}

// MarkThreadRead adds userID to the read-by set of every post in the thread
func (r *Repository) MarkThreadRead(ctx context.Context, threadID, userID uint) (int, error) {
	var postIDs []uint
	db := r.db.WithContext(ctx)
	if err := db.Model(&forum.Post{}).Where("thread_id = ?", threadID).Pluck("id", &postIDs).Error; err != nil {
		return 0, err
	}
	if len(postIDs) == 0 {
		return 0, nil
	}

	rows := make([]forum.PostRead, len(postIDs))
	for i, id := range postIDs {
		rows[i] = forum.PostRead{PostID: id, UserID: userID}
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	return len(postIDs), err
}
