package submission

import "time"

const (
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
	StatusReturned  = "returned"
)

type Submission struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	StudentID  uint       `gorm:"not null;index" json:"student_id"`
	CourseCode string     `gorm:"type:varchar(32);not null;index" json:"course_code"`
	Title      string     `gorm:"type:varchar(200);not null" json:"title"`
	FileName   string     `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	FileURL    string     `gorm:"type:varchar(1024)" json:"file_url,omitempty"`
	FileKey    string     `gorm:"type:varchar(512)" json:"-"`
	Status     string     `gorm:"type:varchar(16);not null;default:submitted;index" json:"status"`
	Grade      *float64   `json:"grade"`
	Feedback   string     `gorm:"type:text" json:"feedback"`
	GradedBy   *uint      `json:"graded_by"`
	GradedAt   *time.Time `json:"graded_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusGraded, StatusReturned:
		return true
	}
	return false
}
