// File: services/delivery/interface.go
package delivery

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	preferenceRepo "entrega/database/repository/preference"
	"entrega/models"
)

// ErrNoWindow signals that no enabled delivery window exists in the coming week.
var ErrNoWindow = errors.New("no available delivery window in the next 7 days")

// PreferenceService owns the weekly delivery-availability model for sales.
// Every edit operation returns the full canonical state after the change.
type PreferenceService interface {
	GetPreferences(ctx context.Context, ownerID string) (models.WeeklyAvailability, error)
	ReplaceAvailability(ctx context.Context, ownerID string, in *models.WeeklyAvailability) (models.WeeklyAvailability, error)
	ToggleDay(ctx context.Context, ownerID string, day models.Weekday, enabled bool) (models.WeeklyAvailability, error)
	AddSlot(ctx context.Context, ownerID string, day models.Weekday) (models.WeeklyAvailability, error)
	UpdateSlot(ctx context.Context, ownerID string, day models.Weekday, index int, patch models.TimeSlotPatch) (models.WeeklyAvailability, error)
	RemoveSlot(ctx context.Context, ownerID string, day models.Weekday, index int) (models.WeeklyAvailability, error)
	SetPriority(ctx context.Context, ownerID string, priority models.Priority) (models.WeeklyAvailability, error)
	SetNotes(ctx context.Context, ownerID string, notes string) (models.WeeklyAvailability, error)

	// ScheduleReminder enqueues a delivery reminder at the next available
	// window and returns its fire time.
	ScheduleReminder(ctx context.Context, ownerID, title, body string) (time.Time, error)
}

// DefaultPreferenceService is the production implementation.
type DefaultPreferenceService struct {
	Repo  preferenceRepo.PreferenceRepository
	Cache *redis.Client
	Asynq *asynq.Client
}
