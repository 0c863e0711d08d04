package models

import "time"

// Notification is a row written by the reminder worker and polled by clients.
type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"index;not null" json:"ownerId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReminderPayload is the asynq task payload for a delivery reminder.
type ReminderPayload struct {
	OwnerID  string `json:"ownerId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
