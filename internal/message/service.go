package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/message"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo     *Repository
	users    *user.Repository
	notifier *notify.Dispatcher
}

func NewService(repo *Repository, users *user.Repository, notifier *notify.Dispatcher) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

// Send delivers a private message, opening the conversation on first contact
func (s *Service) Send(ctx context.Context, senderID uint, req SendRequest) (*message.Message, *response.BusinessError) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, response.ErrValidation("body is required", map[string]string{"body": "required"})
	}
	if req.RecipientID == senderID {
		return nil, response.ErrValidation("cannot message yourself", map[string]string{"recipient_id": "must differ from sender"})
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrUnauthorized("account no longer exists")
		}
		return nil, response.ErrInternal(err)
	}
	recipient, err := s.users.FindByID(ctx, req.RecipientID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("recipient")
		}
		return nil, response.ErrInternal(err)
	}

	participants := []message.Participant{
		{UserID: sender.ID, Role: sender.Role},
		{UserID: recipient.ID, Role: recipient.Role},
	}
	conv, err := s.repo.FindOrCreateConversation(ctx, message.ParticipantKey(sender.ID, recipient.ID), participants)
	if err != nil {
		return nil, response.ErrInternal(err)
	}

	m := &message.Message{ConversationID: conv.ID, SenderID: sender.ID, SenderRole: sender.Role, Body: body}
	if err := s.repo.AddMessage(ctx, m); err != nil {
		return nil, response.ErrInternal(err)
	}

	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeMessage,
		Recipients: notify.MessageRecipients([]uint{sender.ID, recipient.ID}, sender.ID),
		Title:      "New message from " + sender.Name,
		Body:       notify.Preview(body),
		Metadata: map[string]any{
			"conversation_id": conv.ID,
			"message_id":      m.ID,
			"sender_id":       sender.ID,
			"link":            fmt.Sprintf("/messages/%d", conv.ID),
		},
	})
	return m, nil
}

func (s *Service) Conversations(ctx context.Context, userID uint) ([]ConversationSummary, *response.BusinessError) {
	convs, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, response.ErrInternal(err)
	}

	out := make([]ConversationSummary, len(convs))
	for i := range convs {
		unread, err := s.repo.CountUnread(ctx, convs[i].ID, userID)
		if err != nil {
			return nil, response.ErrInternal(err)
		}
		out[i] = ConversationSummary{Conversation: convs[i], Unread: unread}
	}
	return out, nil
}

// checkParticipant hides conversations the caller is not part of
func (s *Service) checkParticipant(ctx context.Context, conversationID, userID uint) *response.BusinessError {
	ok, err := s.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return response.ErrInternal(err)
	}
	if !ok {
		return response.ErrNotFound("conversation")
	}
	return nil
}

func (s *Service) Conversation(ctx context.Context, userID, id uint) (*ConversationDetail, *response.BusinessError) {
	if bizErr := s.checkParticipant(ctx, id, userID); bizErr != nil {
		return nil, bizErr
	}
	conv, err := s.repo.FindConversation(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("conversation")
		}
		return nil, response.ErrInternal(err)
	}
	msgs, err := s.repo.Messages(ctx, id)
	if err != nil {
		return nil, response.ErrInternal(err)
	}

	views := make([]MessageView, len(msgs))
	for i, m := range msgs {
		readBy := make([]uint, len(m.Reads))
		for j, read := range m.Reads {
			readBy[j] = read.UserID
		}
		views[i] = MessageView{Message: m, ReadBy: readBy}
	}
	return &ConversationDetail{Conversation: *conv, Messages: views}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id uint) (int, *response.BusinessError) {
	if bizErr := s.checkParticipant(ctx, id, userID); bizErr != nil {
		return 0, bizErr
	}
	n, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return 0, response.ErrInternal(err)
	}
	return n, nil
}
