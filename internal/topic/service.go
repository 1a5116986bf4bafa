package topic

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notify"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/storage"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Service struct {
	repo     *Repository
	store    storage.Store
	notifier *notify.Dispatcher
	maxSize  int64
}

func NewService(repo *Repository, store storage.Store, notifier *notify.Dispatcher, maxSize int64) *Service {
	return &Service{repo: repo, store: store, notifier: notifier, maxSize: maxSize}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func (s *Service) find(ctx context.Context, id uint) (*topic.Topic, *response.BusinessError) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("topic")
		}
		return nil, response.ErrInternal(err)
	}
	return t, nil
}

// findOwned loads the topic and checks the caller may change it
func (s *Service) findOwned(ctx context.Context, reqID uint, reqRole string, id uint) (*topic.Topic, *response.BusinessError) {
	t, bizErr := s.find(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	if !permission.CanMutate(reqID, reqRole, t.CreatedBy) {
		return nil, response.ErrForbidden("only the topic owner or an admin may do this")
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, p pagination.Params, module string) (pagination.Page[topic.Topic], *response.BusinessError) {
	module = strings.ToUpper(strings.TrimSpace(module))
	topics, total, err := s.repo.List(ctx, p, module)
	if err != nil {
		return pagination.Page[topic.Topic]{}, response.ErrInternal(err)
	}
	return pagination.NewPage(topics, p, total), nil
}

func (s *Service) Create(ctx context.Context, creatorID uint, req CreateTopicRequest) (*topic.Topic, *response.BusinessError) {
	t := &topic.Topic{
		Title:      strings.TrimSpace(req.Title),
		Body:       strings.TrimSpace(req.Body),
		ModuleCode: strings.ToUpper(strings.TrimSpace(req.ModuleCode)),
		Tags:       cleanTags(req.Tags),
		CreatedBy:  creatorID,
	}
	if t.Title == "" {
		return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, response.ErrInternal(err)
	}
	return t, nil
}

// Get viewerID 0 means anonymous
func (s *Service) Get(ctx context.Context, viewerID, id uint) (*TopicDetail, *response.BusinessError) {
	t, err := s.repo.FindWithChildren(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrNotFound("topic")
		}
		return nil, response.ErrInternal(err)
	}

	count, err := s.repo.CountSubscribers(ctx, id)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	detail := &TopicDetail{
		Topic:           *t,
		Resources:       t.Resources,
		Broadcasts:      t.Broadcasts,
		SubscriberCount: count,
	}
	if detail.Resources == nil {
		detail.Resources = []topic.Resource{}
	}
	if detail.Broadcasts == nil {
		detail.Broadcasts = []topic.Broadcast{}
	}
	if viewerID != 0 {
		if detail.Subscribed, err = s.repo.IsSubscribed(ctx, id, viewerID); err != nil {
			return nil, response.ErrInternal(err)
		}
	}
	return detail, nil
}

func (s *Service) Update(ctx context.Context, reqID uint, reqRole string, id uint, req UpdateTopicRequest) (*topic.Topic, *response.BusinessError) {
	t, bizErr := s.findOwned(ctx, reqID, reqRole, id)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.ErrValidation("title is required", map[string]string{"title": "required"})
		}
		t.Title = title
	}
	if req.Body != nil {
		t.Body = strings.TrimSpace(*req.Body)
	}
	if req.ModuleCode != nil {
		t.ModuleCode = strings.ToUpper(strings.TrimSpace(*req.ModuleCode))
	}
	if req.Tags != nil {
		t.Tags = cleanTags(*req.Tags)
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, response.ErrInternal(err)
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, reqID uint, reqRole string, id uint) *response.BusinessError {
	if _, bizErr := s.findOwned(ctx, reqID, reqRole, id); bizErr != nil {
		return bizErr
	}
	keys, err := s.repo.Delete(ctx, id)
	if err != nil {
		return response.ErrInternal(err)
	}
	for _, key := range keys {
		s.removeObject(ctx, key)
	}
	return nil
}

func (s *Service) removeObject(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warn(ctx, "failed to delete stored object", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) SetSubscription(ctx context.Context, userID, topicID uint, subscribed bool) (*SubscriptionResponse, *response.BusinessError) {
	if _, bizErr := s.find(ctx, topicID); bizErr != nil {
		return nil, bizErr
	}

	var err error
	if subscribed {
		err = s.repo.Subscribe(ctx, topicID, userID)
	} else {
		err = s.repo.Unsubscribe(ctx, topicID, userID)
	}
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	return &SubscriptionResponse{TopicID: topicID, Subscribed: subscribed}, nil
}

// UploadResources stores every file, then records them. Nothing is stored
// when any file is over the size limit.
func (s *Service) UploadResources(ctx context.Context, uploaderID, topicID uint, files []*multipart.FileHeader) ([]topic.Resource, *response.BusinessError) {
	if _, bizErr := s.find(ctx, topicID); bizErr != nil {
		return nil, bizErr
	}
	if len(files) == 0 {
		return nil, response.ErrValidation("at least one file is required", map[string]string{"files": "required"})
	}
	for _, fh := range files {
		if fh.Size > s.maxSize {
			return nil, response.ErrValidation(
				fmt.Sprintf("file %s exceeds the %d byte limit", fh.Filename, s.maxSize),
				map[string]string{"files": "too large"},
			)
		}
	}

	prefix := fmt.Sprintf("topics/%d", topicID)
	resources := make([]topic.Resource, 0, len(files))
	for _, fh := range files {
		obj, err := s.save(ctx, prefix, fh)
		if err != nil {
			for _, saved := range resources {
				s.removeObject(ctx, saved.StorageKey)
			}
			return nil, response.ErrInternal(err)
		}
		resources = append(resources, topic.Resource{
			TopicID:     topicID,
			Name:        fh.Filename,
			StorageKey:  obj.Key,
			URL:         obj.URL,
			ContentType: obj.ContentType,
			Size:        obj.Size,
			UploadedBy:  uploaderID,
		})
	}

	if err := s.repo.CreateResources(ctx, resources); err != nil {
		for _, saved := range resources {
			s.removeObject(ctx, saved.StorageKey)
		}
		return nil, response.ErrInternal(err)
	}
	return resources, nil
}

func (s *Service) save(ctx context.Context, prefix string, fh *multipart.FileHeader) (*storage.Object, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.store.Save(ctx, storage.ObjectKey(prefix, fh.Filename, time.Now()), f, fh.Size, contentType)
}

// DeleteResource is allowed for the uploader or an admin; the stored object
// is removed best-effort after the record.
func (s *Service) DeleteResource(ctx context.Context, reqID uint, reqRole string, topicID, resourceID uint) *response.BusinessError {
	res, err := s.repo.FindResource(ctx, topicID, resourceID)
	if err != nil {
		if database.IsNotFound(err) {
			return response.ErrNotFound("resource")
		}
		return response.ErrInternal(err)
	}
	if !permission.CanMutate(reqID, reqRole, res.UploadedBy) {
		return response.ErrForbidden("only the uploader or an admin may delete this resource")
	}

	if err := s.repo.DeleteResource(ctx, res.ID); err != nil {
		return response.ErrInternal(err)
	}
	s.removeObject(ctx, res.StorageKey)
	return nil
}

func (s *Service) Broadcast(ctx context.Context, senderID uint, senderRole string, topicID uint, message string) (*topic.Broadcast, *response.BusinessError) {
	t, bizErr := s.findOwned(ctx, senderID, senderRole, topicID)
	if bizErr != nil {
		return nil, bizErr
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, response.ErrValidation("message is required", map[string]string{"message": "required"})
	}

	b := &topic.Broadcast{TopicID: topicID, SenderID: senderID, Message: message}
	if err := s.repo.CreateBroadcast(ctx, b); err != nil {
		return nil, response.ErrInternal(err)
	}

	subscribers, err := s.repo.SubscriberIDs(ctx, topicID)
	if err != nil {
		logger.FromContext(ctx).Warn(ctx, "failed to load topic subscribers", zap.Uint("topic_id", topicID), zap.Error(err))
		return b, nil
	}
	s.notifier.Dispatch(ctx, notify.Event{
		Type:       notification.TypeBroadcast,
		Recipients: notify.BroadcastRecipients(subscribers, senderID),
		Title:      "New broadcast in " + t.Title,
		Body:       notify.Preview(message),
		Metadata: map[string]any{
			"topic_id":     topicID,
			"broadcast_id": b.ID,
			"link":         fmt.Sprintf("/topics/%d", topicID),
		},
	})
	return b, nil
}
