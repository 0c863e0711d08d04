// File: database/repository/preference/preference.go
package preferenceRepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"entrega/models"
)

// PreferenceRepository abstracts persistence of delivery preferences.
type PreferenceRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*models.DeliveryPreference, error)
	Upsert(ctx context.Context, pref *models.DeliveryPreference) error
}

// GormPreferenceRepo is the Postgres-backed implementation.
type GormPreferenceRepo struct {
	DB *gorm.DB
}

func NewGormPreferenceRepo(db *gorm.DB) *GormPreferenceRepo {
	return &GormPreferenceRepo{DB: db}
}

// GetByOwner fetches the preference row for a sale.
func (r *GormPreferenceRepo) GetByOwner(ctx context.Context, ownerID string) (*models.DeliveryPreference, error) {
	var pref models.DeliveryPreference
	if err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert replaces the availability blob wholesale, creating the row on first write.
func (r *GormPreferenceRepo) Upsert(ctx context.Context, pref *models.DeliveryPreference) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"availability", "updated_at"}),
	}).Create(pref).Error
}
