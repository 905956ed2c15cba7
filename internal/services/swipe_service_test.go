package services

import (
	"errors"
	"testing"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swipeTestEnv struct {
	userRepo         *fakeUserRepo
	swipeRepo        *fakeSwipeRepo
	notificationRepo *fakeNotificationRepo
	email            *fakeEmailProvider
	service          SwipeService
}

func newSwipeTestEnv() *swipeTestEnv {
	userRepo := newFakeUserRepo()
	notificationRepo := newFakeNotificationRepo()
	swipeRepo := newFakeSwipeRepo(notificationRepo)
	emailProvider := &fakeEmailProvider{}

	return &swipeTestEnv{
		userRepo:         userRepo,
		swipeRepo:        swipeRepo,
		notificationRepo: notificationRepo,
		email:            emailProvider,
		service:          NewSwipeService(swipeRepo, userRepo, emailProvider),
	}
}

func TestRecordSwipe_LeftIsTerminal(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	result := env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID:      "job-1",
		SwipedItemOwnerID: "employer-1",
		Direction:         "left",
	})

	require.True(t, result.Success)
	assert.False(t, result.Match)

	swipe, err := env.swipeRepo.FindByKey("worker-1", "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.SwipeStatusRejected, swipe.Status)
	// Отказ не порождает ни уведомлений, ни писем
	assert.Empty(t, env.notificationRepo.notifications)
	assert.Empty(t, env.email.sent)
}

func TestRecordSwipe_RightWithoutReverseIsPending(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	result := env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID:      "job-1",
		SwipedItemOwnerID: "employer-1",
		Direction:         "right",
	})

	require.True(t, result.Success)
	assert.False(t, result.Match)

	swipe, err := env.swipeRepo.FindByKey("worker-1", "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.SwipeStatusPending, swipe.Status)
	assert.Empty(t, env.notificationRepo.notifications)
}

func TestRecordSwipe_MutualRightCreatesMatch(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	// Работодатель первым свайпнул анкету работника
	first := env.service.RecordSwipe("employer-1", &dto.SwipeInput{
		SwipedItemID:      "profile-1",
		SwipedItemOwnerID: "worker-1",
		Direction:         "right",
	})
	require.True(t, first.Success)
	assert.False(t, first.Match)

	// Ответный свайп закрывает пару
	second := env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID:      "job-1",
		SwipedItemOwnerID: "employer-1",
		Direction:         "right",
	})
	require.True(t, second.Success)
	assert.True(t, second.Match)

	// Обе стороны в статусе matched
	mine, err := env.swipeRepo.FindByKey("worker-1", "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.SwipeStatusMatched, mine.Status)

	theirs, err := env.swipeRepo.FindByKey("employer-1", "profile-1")
	require.NoError(t, err)
	assert.Equal(t, models.SwipeStatusMatched, theirs.Status)

	// Ровно одно уведомление, и получает его владелец элемента —
	// тот, кто НЕ свайпал последним
	require.Len(t, env.notificationRepo.notifications, 1)
	n := env.notificationRepo.notifications[0]
	assert.Equal(t, "employer-1", n.UserID)
	assert.Equal(t, "worker-1", n.SenderID)
	assert.Equal(t, "new_match", n.Type)
}

func TestRecordSwipe_MatchSendsEmailWhenOwnerHasAddress(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	env.userRepo.addUser(&models.User{BaseModel: models.BaseModel{ID: "employer-1"}, PhoneNumber: "+77010000001", Email: "boss@example.com"})
	env.userRepo.addUser(&models.User{BaseModel: models.BaseModel{ID: "worker-1"}, PhoneNumber: "+77010000002", DisplayName: "Aruzhan"})

	env.service.RecordSwipe("employer-1", &dto.SwipeInput{
		SwipedItemID: "profile-1", SwipedItemOwnerID: "worker-1", Direction: "right",
	})
	result := env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "right",
	})

	require.True(t, result.Match)
	require.Len(t, env.email.sent, 1)
	assert.Equal(t, "boss@example.com", env.email.sent[0])
}

func TestRecordSwipe_ReswipeOverwritesPair(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "right",
	})
	env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "left",
	})

	// Не более одной записи на пару: повторный свайп заменил прежний
	swipes, err := env.swipeRepo.FindBySwiper("worker-1")
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.Equal(t, models.SwipeDirectionLeft, swipes[0].Direction)
	assert.Equal(t, models.SwipeStatusRejected, swipes[0].Status)
}

func TestRecordSwipe_ValidationFailures(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()

	cases := []struct {
		name    string
		swiper  string
		input   dto.SwipeInput
		wantErr string
	}{
		{
			name:    "пустой item id",
			swiper:  "worker-1",
			input:   dto.SwipeInput{SwipedItemOwnerID: "employer-1", Direction: "right"},
			wantErr: "user and item IDs must be provided",
		},
		{
			name:    "пустой swiper id",
			swiper:  "",
			input:   dto.SwipeInput{SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "right"},
			wantErr: "user and item IDs must be provided",
		},
		{
			name:    "неизвестное направление",
			swiper:  "worker-1",
			input:   dto.SwipeInput{SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "up"},
			wantErr: "swipe direction must be left or right",
		},
		{
			name:    "свайп по своему элементу",
			swiper:  "worker-1",
			input:   dto.SwipeInput{SwipedItemID: "profile-1", SwipedItemOwnerID: "worker-1", Direction: "right"},
			wantErr: "cannot swipe on your own item",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := env.service.RecordSwipe(tc.swiper, &tc.input)
			assert.False(t, result.Success)
			assert.False(t, result.Match)
			assert.Equal(t, tc.wantErr, result.Error)
		})
	}

	// Никакие из отклоненных свайпов не должны были записаться
	swipes, err := env.swipeRepo.FindBySwiper("worker-1")
	require.NoError(t, err)
	assert.Empty(t, swipes)
}

func TestRecordSwipe_StoreErrorIsStructured(t *testing.T) {
	t.Parallel()
	env := newSwipeTestEnv()
	env.swipeRepo.forcedErr = errors.New("connection reset")

	result := env.service.RecordSwipe("worker-1", &dto.SwipeInput{
		SwipedItemID: "job-1", SwipedItemOwnerID: "employer-1", Direction: "right",
	})

	// Ошибка хранилища не паникует и не уходит наверх как error
	assert.False(t, result.Success)
	assert.Equal(t, "failed to record swipe", result.Error)
}
