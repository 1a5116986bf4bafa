package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/email"
)

// Publisher is satisfied by events.KafkaPublisher
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

type publishedNotification struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// PublisherSink forwards each stored row, keyed by recipient
type PublisherSink struct {
	publisher Publisher
}

func NewPublisherSink(p Publisher) *PublisherSink {
	return &PublisherSink{publisher: p}
}

func (s *PublisherSink) Name() string { return "kafka" }

func (s *PublisherSink) Deliver(ctx context.Context, _ Event, rows []notification.Notification) error {
	var errs []error
	for _, row := range rows {
		payload := publishedNotification{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      row.Type,
			Title:     row.Title,
			Body:      row.Body,
			Metadata:  row.Metadata,
			CreatedAt: row.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, fmt.Sprintf("user:%d", row.UserID), payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Mailer is satisfied by *email.Client
type Mailer interface {
	SendWithTemplate(from, to, subject string, tmpl *email.Template, data any) error
}

// EmailSink mails a copy of each notification to the recipient
type EmailSink struct {
	mailer  Mailer
	db      *gorm.DB
	from    string
	baseURL string
	tmpl    *email.Template
}

func NewEmailSink(mailer Mailer, db *gorm.DB, from, baseURL string) (*EmailSink, error) {
	tmpl, err := email.NewTemplate(email.NotificationTemplate)
	if err != nil {
		return nil, err
	}
	return &EmailSink{mailer: mailer, db: db, from: from, baseURL: baseURL, tmpl: tmpl}, nil
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Deliver(ctx context.Context, ev Event, rows []notification.Notification) error {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	var users []user.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return fmt.Errorf("load recipients: %w", err)
	}

	link := ""
	if path, ok := ev.Metadata["link"].(string); ok && path != "" {
		link = s.baseURL + path
	}

	var errs []error
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		data := email.NotificationData{Name: u.Name, Title: ev.Title, Body: ev.Body, Link: link}
		if err := s.mailer.SendWithTemplate(s.from, u.Email, ev.Title, s.tmpl, data); err != nil {
			errs = append(errs, fmt.Errorf("mail user %d: %w", u.ID, err))
		}
	}
	return errors.Join(errs...)
}
