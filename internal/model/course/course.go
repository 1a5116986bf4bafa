package course

import "time"

type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// StudentCourse is one entry of a student's course list
type StudentCourse struct {
	StudentID uint      `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	CourseID  uint      `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (StudentCourse) TableName() string {
	return "student_courses"
}

// RosterEntry is one entry of a course's roster. It mirrors StudentCourse
// from the course side; the two are written independently.
type RosterEntry struct {
	CourseID  uint      `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
	StudentID uint      `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (RosterEntry) TableName() string {
	return "course_rosters"
}
