package services

import (
	"encoding/json"
	"time"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/repositories"
	"jobswipe_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID string, limit, offset int) (*dto.NotificationListResponse, error)
	UnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID string, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notificationView(&n))
	}
	return resp, nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func notificationView(n *models.Notification) dto.NotificationResponse {
	var readAt *string
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		readAt = &v
	}

	return dto.NotificationResponse{
		ID:        n.ID,
		SenderID:  n.SenderID,
		Type:      n.Type,
		Data:      json.RawMessage(n.Data),
		IsRead:    n.IsRead,
		ReadAt:    readAt,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
