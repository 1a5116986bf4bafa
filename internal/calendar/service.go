package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/calendar"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

const timeLayout = "Mon 2 Jan 2006 15:04"

// ValidateEventWindow rejects missing bounds and any end not strictly after start
func ValidateEventWindow(start, end time.Time) *response.BusinessError {
	if start.IsZero() || end.IsZero() {
		return response.ErrValidation("starts_at and ends_at are required", map[string]string{
			"starts_at": "required",
			"ends_at":   "required",
		})
	}
	if !end.After(start) {
		return response.ErrValidation("ends_at must be after starts_at", map[string]string{
			"ends_at": "must be after starts_at",
		})
	}
	return nil
}

type Service struct {
	repo     *Repository
	users    *user.Repository
	notifier *notify.Dispatcher
	now      func() time.Time
}

func NewService(repo *Repository, users *user.Repository, notifier *notify.Dispatcher) *Service {
	return &Service{repo: repo, users: users, notifier: notifier, now: time.Now}
}

// checkAttendees returns the deduplicated ids, rejecting unknown users
func (s *Service) checkAttendees(ctx context.Context, ids []uint) ([]uint, *response.BusinessError) {
	ids = notify.Unique(ids)
	found, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	if len(found) != len(ids) {
		return nil, response.ErrValidation("attendees contain unknown users", map[string]string{
			"attendees": "must reference existing users",
		})
	}
	return ids, nil
}

func (s *Service) find(ctx context.Context, id uint) (*calendar.Event, *response.BusinessError) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("event")
		}
		return nil, response.ErrInternal(err)
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, ownerID uint, req CreateEventRequest) (*calendar.Event, *response.BusinessError) {
	if bizErr := ValidateEventWindow(req.StartsAt, req.EndsAt); bizErr != nil {
		return nil, bizErr
	}
	attendees, bizErr := s.checkAttendees(ctx, req.Attendees)
	if bizErr != nil {
		return nil, bizErr
	}

	e := &calendar.Event{
		OwnerID:  ownerID,
		Title:    strings.TrimSpace(req.Title),
		StartsAt: req.StartsAt.UTC(),
		EndsAt:   req.EndsAt.UTC(),
		Location: strings.TrimSpace(req.Location),
		Notes:    strings.TrimSpace(req.Notes),
	}
	if e.Title == "" {
		return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
	}
	for _, id := range attendees {
		e.Attendees = append(e.Attendees, calendar.Attendee{UserID: id, Status: calendar.RSVPInvited})
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, response.ErrInternal(err)
	}

	s.announce(ctx, e, ChangeCreated, notify.EventCreatedRecipients(attendees, ownerID))
	return s.find(ctx, e.ID)
}

// List userID sees the events they own or attend
func (s *Service) List(ctx context.Context, userID uint, p pagination.Params, from, to *time.Time) (pagination.Page[calendar.Event], *response.BusinessError) {
	events, total, err := s.repo.List(ctx, p, ListFilter{UserID: userID, From: from, To: to})
	if err != nil {
		return pagination.Page[calendar.Event]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(events, p, total), nil
}

func isAttendee(e *calendar.Event, userID uint) bool {
	for _, a := range e.Attendees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// Get is visible to the owner, attendees and admins; others get a 404
func (s *Service) Get(ctx context.Context, reqID uint, reqRole string, id uint) (*calendar.Event, *response.BusinessError) {
	e, bizErr := s.find(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	if !permission.CanMutate(reqID, reqRole, e.OwnerID) && !isAttendee(e, reqID) {
		return nil, response.ErrNotFound("event")
	}
	return e, nil
}

// Update applies a partial change. A new attendee list is diffed against the
// stored one: added ids get an "added" notification, dropped ids a "removed"
// one, and ids in both sets nothing.
func (s *Service) Update(ctx context.Context, reqID uint, reqRole string, id uint, req UpdateEventRequest) (*calendar.Event, *response.BusinessError) {
	e, bizErr := s.find(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	if !permission.CanMutate(reqID, reqRole, e.OwnerID) {
		return nil, response.ErrForbidden("only the event owner or an admin may change this event")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
		}
		e.Title = title
	}
	if req.StartsAt != nil {
		e.StartsAt = req.StartsAt.UTC()
	}
	if req.EndsAt != nil {
		e.EndsAt = req.EndsAt.UTC()
	}
	if bizErr := ValidateEventWindow(e.StartsAt, e.EndsAt); bizErr != nil {
		return nil, bizErr
	}
	if req.Location != nil {
		e.Location = strings.TrimSpace(*req.Location)
	}
	if req.Notes != nil {
		e.Notes = strings.TrimSpace(*req.Notes)
	}

	var next, added, removed []uint
	if req.Attendees != nil {
		if next, bizErr = s.checkAttendees(ctx, *req.Attendees); bizErr != nil {
			return nil, bizErr
		}
		added, removed = notify.AttendeeDiff(e.AttendeeIDs(), next)
	}

	if err := s.repo.Update(ctx, e, next); err != nil {
		return nil, response.ErrInternal(err)
	}

	s.announce(ctx, e, ChangeAdded, added)
	s.announce(ctx, e, ChangeRemoved, removed)
	return s.find(ctx, e.ID)
}

func (s *Service) Delete(ctx context.Context, reqID uint, reqRole string, id uint) *response.BusinessError {
	e, bizErr := s.find(ctx, id)
	if bizErr != nil {
		return bizErr
	}
	if !permission.CanMutate(reqID, reqRole, e.OwnerID) {
		return response.ErrForbidden("only the event owner or an admin may delete this event")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return response.ErrInternal(err)
	}

	s.announce(ctx, e, ChangeDeleted, notify.EventDeletedRecipients(e.AttendeeIDs(), reqID))
	return nil
}

func (s *Service) RSVP(ctx context.Context, userID, id uint, status string) (*calendar.Event, *response.BusinessError) {
	if status != calendar.RSVPAccepted && status != calendar.RSVPDeclined {
		return nil, response.ErrValidation("status must be accepted or declined", map[string]string{"status": "invalid"})
	}
	if _, bizErr := s.find(ctx, id); bizErr != nil {
		return nil, bizErr
	}

	ok, err := s.repo.SetRSVP(ctx, id, userID, status)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	if !ok {
		return nil, response.ErrForbidden("only attendees may respond to this event")
	}
	return s.find(ctx, id)
}

func describe(e *calendar.Event, change string) (title, body string) {
	when := e.StartsAt.Format(timeLayout)
	switch change {
	case ChangeCreated:
		return "New event: " + e.Title, fmt.Sprintf("You are invited to %s on %s.", e.Title, when)
	case ChangeAdded:
		return "Added to event: " + e.Title, fmt.Sprintf("You were added to %s on %s.", e.Title, when)
	case ChangeRemoved:
		return "Removed from event: " + e.Title, fmt.Sprintf("You were removed from %s on %s.", e.Title, when)
	default:
		return "Event cancelled: " + e.Title, fmt.Sprintf("%s on %s was cancelled.", e.Title, when)
	}
}

// announce dispatches one calendar notification per recipient and stamps
// notified_at for recipients that are still attendees
func (s *Service) announce(ctx context.Context, e *calendar.Event, change string, recipients []uint) {
	if len(recipients) == 0 {
		return
	}
	title, body := describe(e, change)
	meta := map[string]any{"event_id": e.ID, "change": change}
	if change != ChangeDeleted && change != ChangeRemoved {
		meta["link"] = fmt.Sprintf("/calendar/%d", e.ID)
	}
	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeCalendar,
		Recipients: recipients,
		Title:      title,
		Body:       body,
		Metadata:   meta,
	})

	if change == ChangeCreated || change == ChangeAdded {
		if err := s.repo.MarkNotified(ctx, e.ID, recipients, s.now()); err != nil {
			logger.FromContext(ctx).Warn(ctx, "failed to stamp notified_at", zap.Uint("event_id", e.ID), zap.Error(err))
		}
	}
}
