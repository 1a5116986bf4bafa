package message

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/message"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindOrCreateConversation inserts the conversation unless its key already
// exists, then loads it. Concurrent first messages converge on one row via
// the unique key.
func (r *Repository) FindOrCreateConversation(ctx context.Context, key string, participants []message.Participant) (*message.Conversation, error) {
	db := r.db.WithContext(ctx)
	conv := &message.Conversation{ParticipantKey: key, LastMessageAt: time.Now()}
	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(conv).Error; err != nil {
		return nil, err
	}

	var stored message.Conversation
	if err := db.Where("participant_key = ?", key).First(&stored).Error; err != nil {
		return nil, err
	}
	for i := range participants {
		participants[i].ConversationID = stored.ID
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&participants).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// AddMessage stores the message and bumps the conversation's last activity
func (r *Repository) AddMessage(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&message.Conversation{}).
			Where("id = ?", m.ConversationID).
			Update("last_message_at", m.CreatedAt).Error
	})
}

func (r *Repository) IsParticipant(ctx context.Context, conversationID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&message.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListConversations returns userID's conversations, latest activity first
func (r *Repository) ListConversations(ctx context.Context, userID uint) ([]message.Conversation, error) {
	mine := r.db.Model(&message.Participant{}).Select("conversation_id").Where("user_id = ?", userID)
	var convs []message.Conversation
	err := r.db.WithContext(ctx).
		Where("id IN (?)", mine).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id ASC")
		}).
		Order("last_message_at DESC, id DESC").
		Find(&convs).Error
	return convs, err
}

// CountUnread counts messages from others that userID has not read
func (r *Repository) CountUnread(ctx context.Context, conversationID, userID uint) (int64, error) {
	read := r.db.Model(&message.MessageRead{}).Select("message_id").Where("user_id = ?", userID)
	var count int64
	err := r.db.WithContext(ctx).Model(&message.Message{}).
		Where("conversation_id = ? AND sender_id <> ?", conversationID, userID).
		Where("id NOT IN (?)", read).
		Count(&count).Error
	return count, err
}

func (r *Repository) FindConversation(ctx context.Context, id uint) (*message.Conversation, error) {
	var conv message.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id ASC")
		}).
		First(&conv, id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Messages returns the conversation oldest first with each read set loaded
func (r *Repository) Messages(ctx context.Context, conversationID uint) ([]message.Message, error) {
	var msgs []message.Message
	err := r.db.WithContext(ctx).
		Preload("Reads", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id ASC")
		}).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkRead adds userID to the read set of every message in the conversation
func (r *Repository) MarkRead(ctx context.Context, conversationID, userID uint) (int, error) {
	db := r.db.WithContext(ctx)
	var ids []uint
	if err := db.Model(&message.Message{}).Where("conversation_id = ?", conversationID).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	rows := make([]message.MessageRead, len(ids))
	for i, id := range ids {
		rows[i] = message.MessageRead{MessageID: id, UserID: userID}
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	return len(ids), err
}
