package calendar

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/calendar"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func preloadAttendees(db *gorm.DB) *gorm.DB {
	return db.Order("user_id ASC")
}

func (r *Repository) Create(ctx context.Context, e *calendar.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*calendar.Event, error) {
	var e calendar.Event
	if err := r.db.WithContext(ctx).Preload("Attendees", preloadAttendees).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListFilter bounds are optional; an event matches when it overlaps [From, To]
type ListFilter struct {
	UserID uint
	From   *time.Time
	To     *time.Time
}

// List returns events the user owns or attends, soonest first
func (r *Repository) List(ctx context.Context, p pagination.Params, f ListFilter) ([]calendar.Event, int64, error) {
	attending := r.db.Model(&calendar.Attendee{}).Select("event_id").Where("user_id = ?", f.UserID)
	query := r.db.WithContext(ctx).Model(&calendar.Event{}).
		Where("(owner_id = ? OR id IN (?))", f.UserID, attending)
	if f.From != nil {
		query = query.Where("ends_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("starts_at <= ?", *f.To)
	}
	query = p.Search(query, "title", "location")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []calendar.Event
	err := p.Apply(query).
		Preload("Attendees", preloadAttendees).
		Order("starts_at ASC, id ASC").
		Find(&events).Error
	return events, total, err
}

// Update saves the event fields. When next is non-nil the attendee set is
// replaced: missing ids are removed, new ids are invited, and the RSVP of
// ids in both sets is kept.
func (r *Repository) Update(ctx context.Context, e *calendar.Event, next []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(e).Error; err != nil {
			return err
		}
		if next == nil {
			return nil
		}

		remove := tx.Where("event_id = ?", e.ID)
		if len(next) > 0 {
			remove = remove.Where("user_id NOT IN ?", next)
		}
		if err := remove.Delete(&calendar.Attendee{}).Error; err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}

		rows := make([]calendar.Attendee, len(next))
		for i, id := range next {
			rows[i] = calendar.Attendee{EventID: e.ID, UserID: id, Status: calendar.RSVPInvited}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&calendar.Attendee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&calendar.Event{}, id).Error
	})
}

func (r *Repository) MarkNotified(ctx context.Context, eventID uint, userIDs []uint, at time.Time) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&calendar.Attendee{}).
		Where("event_id = ? AND user_id IN ?", eventID, userIDs).
		Update("notified_at", at).Error
}

// SetRSVP returns false when the user is not an attendee
func (r *Repository) SetRSVP(ctx context.Context, eventID, userID uint, status string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&calendar.Attendee{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}
