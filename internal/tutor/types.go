package tutor

import (
	"time"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

type UpsertProfileRequest struct {
	Bio     string   `json:"bio" binding:"max=2000"`
	Phone   string   `json:"phone" binding:"max=32"`
	Modules []string `json:"modules" binding:"max=20,dive,min=1,max=32"`
	Topics  []string `json:"topics" binding:"max=50,dive,min=1,max=100"`
}

type ProfileResponse struct {
	User      userModel.Summary `json:"user"`
	Bio       string            `json:"bio"`
	Phone     string            `json:"phone"`
	Modules   []string          `json:"modules"`
	Topics    []string          `json:"topics"`
	Resources []topic.Resource  `json:"resources,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at"`
}
