package question

import "time"

const (
	StatusOpen     = "open"
	StatusAnswered = "answered"
)

type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;index" json:"student_id"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	ModuleCode string    `gorm:"type:varchar(32);index" json:"module_code"`
	Status     string    `gorm:"type:varchar(16);not null;default:open;index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Responses []Response `gorm:"foreignKey:QuestionID" json:"responses"`
}

func (Question) TableName() string {
	return "questions"
}

// Response is append-only
type Response struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	TutorID    uint      `gorm:"not null" json:"tutor_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Response) TableName() string {
	return "question_responses"
}
