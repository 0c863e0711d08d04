// File: database/repository/notification/notification.go
package notificationRepo

import (
	"context"

	"gorm.io/gorm"

	"entrega/models"
)

// NotificationRepository abstracts persistence of notification rows.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.Notification, error)
}

// GormNotificationRepo is the Postgres-backed implementation.
type GormNotificationRepo struct {
	DB *gorm.DB
}

func NewGormNotificationRepo(db *gorm.DB) *GormNotificationRepo {
	return &GormNotificationRepo{DB: db}
}

func (r *GormNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

// ListByOwner returns the newest notifications first.
func (r *GormNotificationRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.Notification
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
