package models

import "time"

// Swipe — направленное предпочтение одного пользователя к одному элементу
// (вакансии или анкете). Составной ключ (swiper_user_id, swiped_item_id)
// гарантирует не более одного свайпа на пару; повторная запись перезаписывает
// существующую.
type Swipe struct {
	SwiperUserID string `gorm:"primaryKey;index:idx_swipes_reverse,priority:1"`
	SwipedItemID string `gorm:"primaryKey"`

	// Владелец элемента. Обратный свайп ищется по паре
	// (swiper_user_id, swiped_item_owner_id) — составной индекс обязателен.
	SwipedItemOwnerID string `gorm:"not null;index:idx_swipes_reverse,priority:2"`

	Direction SwipeDirection `gorm:"type:varchar(10);not null;index:idx_swipes_reverse,priority:3"`
	Status    SwipeStatus    `gorm:"type:varchar(10);not null"`

	CreatedAt time.Time `gorm:"default:now()"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Swipe) TableName() string {
	return "swipes"
}

// IsMatch сообщает, закрыта ли пара взаимным right-свайпом.
func (s *Swipe) IsMatch() bool {
	return s.Status == SwipeStatusMatched
}
