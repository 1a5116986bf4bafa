package student

import (
	"time"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

type EmergencyContact struct {
	Name  string `json:"name" binding:"max=100"`
	Phone string `json:"phone" binding:"max=32"`
}

type UpsertProfileRequest struct {
	StudentNumber    string           `json:"student_number" binding:"max=32"`
	Year             int              `json:"year" binding:"omitempty,min=1,max=6"`
	Phone            string           `json:"phone" binding:"max=32"`
	Bio              string           `json:"bio" binding:"max=2000"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
}

type ProfileResponse struct {
	User             userModel.Summary `json:"user"`
	StudentNumber    string            `json:"student_number"`
	Year             int               `json:"year"`
	Phone            string            `json:"phone"`
	Bio              string            `json:"bio"`
	EmergencyContact EmergencyContact  `json:"emergency_contact"`
	Courses          []uint            `json:"courses"`
	UpdatedAt        *time.Time        `json:"updated_at"`
}

// ListItem is one row of the admin student list
type ListItem struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Year          int    `json:"year"`
}
