package services

import (
	"testing"

	"jobswipe_backend/internal/models"
	"jobswipe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_ListAndUnreadCount(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	repo.add(&models.Notification{UserID: "u1", SenderID: "u2", Type: "new_match"})
	repo.add(&models.Notification{UserID: "u1", SenderID: "u3", Type: "new_match"})
	repo.add(&models.Notification{UserID: "other", SenderID: "u2", Type: "new_match"})

	resp, err := service.List("u1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Notifications, 2)

	count, err := service.UnreadCount("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)
}

func TestNotifications_MarkRead(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	repo.add(&models.Notification{UserID: "u1", SenderID: "u2", Type: "new_match"})
	id := repo.notifications[0].ID

	require.NoError(t, service.MarkRead("u1", id))

	count, err := service.UnreadCount("u1")
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestNotifications_MarkReadForeignNotification(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	repo.add(&models.Notification{UserID: "owner", SenderID: "u2", Type: "new_match"})
	id := repo.notifications[0].ID

	// Чужое уведомление пометить нельзя
	err := service.MarkRead("intruder", id)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestNotifications_MarkAllRead(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	repo.add(&models.Notification{UserID: "u1", SenderID: "u2", Type: "new_match"})
	repo.add(&models.Notification{UserID: "u1", SenderID: "u3", Type: "new_match"})

	require.NoError(t, service.MarkAllRead("u1"))

	count, err := service.UnreadCount("u1")
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}
