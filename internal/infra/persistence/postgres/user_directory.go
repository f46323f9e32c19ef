package postgres

import (
	"context"

	"livewell/internal/domain/repository"
	"livewell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type userDirectory struct {
	db *gorm.DB
}

// NewUserDirectory reads accounts from the identity provider's schema.
func NewUserDirectory(db *gorm.DB) repository.UserDirectory {
	return &userDirectory{db: db}
}

// ListUserIDs returns every account id.
func (d *userDirectory) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := d.db.WithContext(ctx).
		Model(&model.AuthUserModel{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return ids, nil
}

// FindByEmail looks an account up by its email, case-insensitively.
func (d *userDirectory) FindByEmail(ctx context.Context, email string) (*repository.UserAccount, error) {
	var userM model.AuthUserModel

	if err := d.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &repository.UserAccount{ID: userM.ID, Email: userM.Email}, nil
}
