package calendar

import "time"

type CreateEventRequest struct {
	Title     string    `json:"title" binding:"required,max=200"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
	Location  string    `json:"location" binding:"max=200"`
	Notes     string    `json:"notes" binding:"max=5000"`
	Attendees []uint    `json:"attendees" binding:"max=200"`
}

// UpdateEventRequest nil fields are left unchanged; a non-nil attendees
// list replaces the whole set
type UpdateEventRequest struct {
	Title     *string    `json:"title" binding:"omitempty,min=1,max=200"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	Location  *string    `json:"location" binding:"omitempty,max=200"`
	Notes     *string    `json:"notes" binding:"omitempty,max=5000"`
	Attendees *[]uint    `json:"attendees" binding:"omitempty,max=200"`
}

type RSVPRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// Change values carried in notification metadata
const (
	ChangeCreated = "created"
	ChangeAdded   = "added"
	ChangeRemoved = "removed"
	ChangeDeleted = "deleted"
)
