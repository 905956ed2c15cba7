package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	"jobswipe_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSwipeNotFound = errors.New("swipe not found")
)

type SwipeRepository interface {
	// Upsert перезаписывает свайп по составному ключу (swiper, item):
	// не более одной записи на пару, повторный свайп заменяет прежний.
	Upsert(swipe *models.Swipe) error

	// RecordRightAndDetectMatch записывает right-свайп и проверяет взаимный
	// интерес в одной serializable-транзакции: upsert pending, поиск
	// обратных right-свайпов, при совпадении — перевод обеих сторон в
	// matched и ровно одно уведомление владельцу элемента. Конкурентные
	// взаимные свайпы сериализуются на уровне БД.
	RecordRightAndDetectMatch(swipe *models.Swipe) (matched bool, err error)

	FindByKey(swiperID, itemID string) (*models.Swipe, error)
	FindBySwiper(swiperID string) ([]models.Swipe, error)
	FindRightBySwiper(swiperID string) ([]models.Swipe, error)
	FindRightByItemOwner(ownerID string) ([]models.Swipe, error)
	FindMatchedBySwiper(swiperID string) ([]models.Swipe, error)
}

type SwipeRepositoryImpl struct {
	db *gorm.DB
}

func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &SwipeRepositoryImpl{db: db}
}

// Колонки, перезаписываемые при повторном свайпе той же пары.
var swipeConflictColumns = []clause.Column{
	{Name: "swiper_user_id"},
	{Name: "swiped_item_id"},
}

var swipeUpdateColumns = []string{"swiped_item_owner_id", "direction", "status", "updated_at"}

func upsertSwipe(tx *gorm.DB, swipe *models.Swipe) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   swipeConflictColumns,
		DoUpdates: clause.AssignmentColumns(swipeUpdateColumns),
	}).Create(swipe).Error
}

func (r *SwipeRepositoryImpl) Upsert(swipe *models.Swipe) error {
	return upsertSwipe(r.db, swipe)
}

func (r *SwipeRepositoryImpl) RecordRightAndDetectMatch(swipe *models.Swipe) (bool, error) {
	matched := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		swipe.Direction = models.SwipeDirectionRight
		swipe.Status = models.SwipeStatusPending

		if err := upsertSwipe(tx, swipe); err != nil {
			return err
		}

		// Обратное отношение: владелец элемента ранее свайпнул right
		// на любой элемент текущего свайпера.
		var reverse []models.Swipe
		if err := tx.
			Where("swiper_user_id = ? AND swiped_item_owner_id = ? AND direction = ?",
				swipe.SwipedItemOwnerID, swipe.SwiperUserID, models.SwipeDirectionRight).
			Find(&reverse).Error; err != nil {
			return err
		}

		if len(reverse) == 0 {
			// Односторонний лайк: статус остается pending.
			return nil
		}

		// Взаимный интерес: обе стороны переходят в matched парой.
		if err := tx.Model(&models.Swipe{}).
			Where("swiper_user_id = ? AND swiped_item_id = ?", swipe.SwiperUserID, swipe.SwipedItemID).
			Update("status", models.SwipeStatusMatched).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Swipe{}).
			Where("swiper_user_id = ? AND swiped_item_owner_id = ? AND direction = ?",
				swipe.SwipedItemOwnerID, swipe.SwiperUserID, models.SwipeDirectionRight).
			Update("status", models.SwipeStatusMatched).Error; err != nil {
			return err
		}

		// Уведомление получает тот, кто сейчас НЕ свайпал.
		payload, _ := json.Marshal(map[string]string{"swiped_item_id": swipe.SwipedItemID})
		notification := &models.Notification{
			UserID:   swipe.SwipedItemOwnerID,
			SenderID: swipe.SwiperUserID,
			Type:     NotificationTypeNewMatch,
			Data:     datatypes.JSON(payload),
		}
		if err := tx.Create(notification).Error; err != nil {
			return err
		}

		swipe.Status = models.SwipeStatusMatched
		matched = true
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	return matched, err
}

func (r *SwipeRepositoryImpl) FindByKey(swiperID, itemID string) (*models.Swipe, error) {
	var swipe models.Swipe
	err := r.db.First(&swipe, "swiper_user_id = ? AND swiped_item_id = ?", swiperID, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *SwipeRepositoryImpl) FindBySwiper(swiperID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := r.db.Where("swiper_user_id = ?", swiperID).Find(&swipes).Error
	return swipes, err
}

func (r *SwipeRepositoryImpl) FindRightBySwiper(swiperID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := r.db.
		Where("swiper_user_id = ? AND direction = ?", swiperID, models.SwipeDirectionRight).
		Order("created_at").
		Find(&swipes).Error
	return swipes, err
}

func (r *SwipeRepositoryImpl) FindRightByItemOwner(ownerID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := r.db.
		Where("swiped_item_owner_id = ? AND direction = ?", ownerID, models.SwipeDirectionRight).
		Order("created_at").
		Find(&swipes).Error
	return swipes, err
}

func (r *SwipeRepositoryImpl) FindMatchedBySwiper(swiperID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := r.db.
		Where("swiper_user_id = ? AND status = ?", swiperID, models.SwipeStatusMatched).
		Order("created_at").
		Find(&swipes).Error
	return swipes, err
}
