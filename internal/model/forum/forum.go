package forum

import "time"

type Thread struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Category   string    `gorm:"type:varchar(64);not null;index" json:"category"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	LastPostAt time.Time `gorm:"index" json:"last_post_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:ThreadID" json:"posts,omitempty"`
}

func (Thread) TableName() string {
	return "forum_threads"
}

// Post is append-only within its thread
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ThreadID  uint      `gorm:"not null;index" json:"thread_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reads []PostRead `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string {
	return "forum_posts"
}

// PostRead is one member of a post's read-by set
type PostRead struct {
	PostID uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ReadAt time.Time `gorm:"autoCreateTime" json:"read_at"`
}

func (PostRead) TableName() string {
	return "forum_post_reads"
}
