package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	// Получатель — владелец элемента, на который свайпнули.
	UserID   string         `gorm:"not null;index"`
	SenderID string         `gorm:"not null"`
	Type     string         `gorm:"not null"` // "new_match"
	Data     datatypes.JSON `gorm:"type:jsonb"` // {"swiped_item_id": "..."}
	IsRead   bool           `gorm:"default:false"`
	ReadAt   *time.Time
}
