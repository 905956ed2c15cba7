package dto

import "encoding/json"

// NotificationResponse — уведомление в API-формате
type NotificationResponse struct {
	ID        string          `json:"id"`
	SenderID  string          `json:"sender_id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	ReadAt    *string         `json:"read_at,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// NotificationListResponse — страница уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// UnreadCountResponse — количество непрочитанных
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
