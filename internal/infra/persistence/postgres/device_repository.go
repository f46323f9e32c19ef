// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
	"livewell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert registers the token, replacing the user's previous one.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.DeviceToken) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_token", "platform", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		return createError(err, "device token")
	}

	// Update the entity with generated values
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByUser retrieves the user's registered token.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DeviceToken, error) {
	var deviceM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token by user")
	}

	return toDeviceDomain(&deviceM), nil
}

// Delete removes the user's token.
func (repo *deviceRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		UserID:    data.UserID,
		Token:     data.DeviceToken,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		UserID:      data.UserID,
		DeviceToken: data.Token,
		Platform:    data.Platform,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
