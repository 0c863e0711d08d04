// File: services/delivery/service.go
package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"entrega/config"
	"entrega/models"
	"entrega/services/tasks"
	"entrega/utils"
)

func cacheKey(ownerID string) string {
	return "delivery:prefs:" + ownerID
}

// GetPreferences returns the canonical availability for a sale. A missing row
// yields the default week; a corrupt blob is reconciled rather than rejected.
func (s *DefaultPreferenceService) GetPreferences(ctx context.Context, ownerID string) (models.WeeklyAvailability, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey(ownerID)).Bytes(); err == nil {
			var av models.WeeklyAvailability
			if json.Unmarshal(raw, &av) == nil {
				return Normalize(&av), nil
			}
		}
	}

	pref, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultAvailability(), nil
		}
		return models.WeeklyAvailability{}, err
	}

	normalized := Normalize(decodeAvailability(pref.Availability))
	s.cacheSet(ctx, ownerID, normalized)
	return normalized, nil
}

// ReplaceAvailability normalizes the supplied value and persists it wholesale.
func (s *DefaultPreferenceService) ReplaceAvailability(ctx context.Context, ownerID string, in *models.WeeklyAvailability) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(models.WeeklyAvailability) models.WeeklyAvailability {
		return Normalize(in)
	})
}

func (s *DefaultPreferenceService) ToggleDay(ctx context.Context, ownerID string, day models.Weekday, enabled bool) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return ToggleDay(av, day, enabled)
	})
}

func (s *DefaultPreferenceService) AddSlot(ctx context.Context, ownerID string, day models.Weekday) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return AddSlot(av, day)
	})
}

func (s *DefaultPreferenceService) UpdateSlot(ctx context.Context, ownerID string, day models.Weekday, index int, patch models.TimeSlotPatch) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return UpdateSlot(av, day, index, patch)
	})
}

func (s *DefaultPreferenceService) RemoveSlot(ctx context.Context, ownerID string, day models.Weekday, index int) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return RemoveSlot(av, day, index)
	})
}

func (s *DefaultPreferenceService) SetPriority(ctx context.Context, ownerID string, priority models.Priority) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return SetPriority(av, priority)
	})
}

func (s *DefaultPreferenceService) SetNotes(ctx context.Context, ownerID string, notes string) (models.WeeklyAvailability, error) {
	return s.apply(ctx, ownerID, func(av models.WeeklyAvailability) models.WeeklyAvailability {
		return SetNotes(av, notes)
	})
}

// ScheduleReminder computes the next available window and enqueues an asynq
// task that fires at its start.
func (s *DefaultPreferenceService) ScheduleReminder(ctx context.Context, ownerID, title, body string) (time.Time, error) {
	av, err := s.GetPreferences(ctx, ownerID)
	if err != nil {
		return time.Time{}, err
	}

	fireAt, ok := NextWindow(av, time.Now())
	if !ok {
		return time.Time{}, ErrNoWindow
	}
	if s.Asynq == nil {
		return time.Time{}, fmt.Errorf("reminder queue is not configured")
	}

	payload := models.ReminderPayload{
		OwnerID:  ownerID,
		Title:    title,
		Body:     body,
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewDeliveryReminderTask(payload, fireAt)
	if err != nil {
		return time.Time{}, err
	}
	if _, err := s.Asynq.EnqueueContext(ctx, task, opts...); err != nil {
		return time.Time{}, fmt.Errorf("failed to enqueue delivery reminder: %w", err)
	}
	return fireAt, nil
}

// apply runs one pure edit against the persisted state and writes the result
// back wholesale, invalidating the cache.
func (s *DefaultPreferenceService) apply(ctx context.Context, ownerID string, edit func(models.WeeklyAvailability) models.WeeklyAvailability) (models.WeeklyAvailability, error) {
	pref, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WeeklyAvailability{}, err
		}
		pref = &models.DeliveryPreference{
			ID:      uuid.NewString(),
			OwnerID: ownerID,
		}
	}

	next := edit(Normalize(decodeAvailability(pref.Availability)))

	raw, err := json.Marshal(next)
	if err != nil {
		return models.WeeklyAvailability{}, fmt.Errorf("failed to encode availability: %w", err)
	}
	pref.Availability = raw

	if err := s.Repo.Upsert(ctx, pref); err != nil {
		return models.WeeklyAvailability{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, cacheKey(ownerID)).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate preference cache",
				zap.String("ownerId", ownerID), zap.Error(err))
		}
	}
	return next, nil
}

// decodeAvailability parses the stored blob; malformed blobs are treated as
// absent so the caller falls back to the canonical default.
func decodeAvailability(raw []byte) *models.WeeklyAvailability {
	if len(raw) == 0 {
		return nil
	}
	var av models.WeeklyAvailability
	if err := json.Unmarshal(raw, &av); err != nil {
		return nil
	}
	return &av
}

func (s *DefaultPreferenceService) cacheSet(ctx context.Context, ownerID string, av models.WeeklyAvailability) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(av)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := s.Cache.Set(ctx, cacheKey(ownerID), raw, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache preferences",
			zap.String("ownerId", ownerID), zap.Error(err))
	}
}
