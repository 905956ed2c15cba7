package dto

// SwipeInput представляет тело запроса на запись свайпа
// @Description direction — "left" (отказ) или "right" (интерес)
type SwipeInput struct {
	SwipedItemID      string `json:"item_id" validate:"required"`
	SwipedItemOwnerID string `json:"item_owner_id" validate:"required"`
	Direction         string `json:"direction" validate:"required,is-swipe-direction"`
}

// SwipeResult — структурированный итог записи свайпа.
// Ошибки хранилища не пробрасываются наверх, а попадают в Error.
type SwipeResult struct {
	Success bool   `json:"success"`
	Match   bool   `json:"match"`
	Error   string `json:"error,omitempty"`
}
