package message

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Conversation is keyed by its sorted participant ids, e.g. "3:7"
type Conversation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ParticipantKey string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"participant_key"`
	LastMessageAt  time.Time `gorm:"index" json:"last_message_at"`
	CreatedAt      time.Time `json:"created_at"`

	Participants []Participant `gorm:"foreignKey:ConversationID" json:"participants"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Participant struct {
	ConversationID uint   `gorm:"primaryKey;autoIncrement:false" json:"conversation_id"`
	UserID         uint   `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
	Role           string `gorm:"type:varchar(20)" json:"role"`
}

func (Participant) TableName() string {
	return "conversation_participants"
}

type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint      `gorm:"not null" json:"sender_id"`
	SenderRole     string    `gorm:"type:varchar(20)" json:"sender_role"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	Reads []MessageRead `gorm:"foreignKey:MessageID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

type MessageRead struct {
	MessageID uint      `gorm:"primaryKey;autoIncrement:false" json:"message_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ReadAt    time.Time `gorm:"autoCreateTime" json:"read_at"`
}

func (MessageRead) TableName() string {
	return "message_reads"
}

// ParticipantKey builds the deterministic conversation key: ids are
// deduplicated and sorted so {7,3} and {3,7} map to "3:7".
func ParticipantKey(ids ...uint) string {
	set := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	parts := make([]string, len(unique))
	for i, id := range unique {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ":")
}
