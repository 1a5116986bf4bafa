// Package profile holds the per-role profile records. Both are created lazily
// by upsert on the first profile write.
package profile

import (
	"time"

	"gorm.io/datatypes"
)

type StudentProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	StudentNumber  string    `gorm:"type:varchar(32);index" json:"student_number"`
	Year           int       `json:"year"`
	Phone          string    `gorm:"type:varchar(32)" json:"phone"`
	Bio            string    `gorm:"type:text" json:"bio"`
	EmergencyName  string    `gorm:"type:varchar(100)" json:"emergency_name"`
	EmergencyPhone string    `gorm:"type:varchar(32)" json:"emergency_phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

type TutorProfile struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	UserID    uint                        `gorm:"not null;uniqueIndex" json:"user_id"`
	Bio       string                      `gorm:"type:text" json:"bio"`
	Phone     string                      `gorm:"type:varchar(32)" json:"phone"`
	Modules   datatypes.JSONSlice[string] `json:"modules"`
	Topics    datatypes.JSONSlice[string] `json:"topics"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (TutorProfile) TableName() string {
	return "tutor_profiles"
}
