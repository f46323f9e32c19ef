package postgres

import (
	"context"

	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
	"livewell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for the goal recommendation history repository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Create writes one history row.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.GoalRecommendation) error {
	recM := &model.GoalRecommendationModel{
		RecommendID:         rec.RecommendID,
		UserID:              rec.UserID,
		Title:               rec.Title,
		Type:                rec.Type,
		StepsTarget:         rec.StepsTarget,
		WaterIntakeMLTarget: rec.WaterIntakeMLTarget,
		Description:         rec.Description,
		AlreadySet:          rec.AlreadySet,
		CreatedAt:           rec.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		return createError(err, "goal recommendation")
	}

	rec.RecommendID = recM.RecommendID
	rec.CreatedAt = recM.CreatedAt

	return nil
}

// FindByUser lists the user's history, newest first.
func (repo *recommendationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GoalRecommendation, error) {
	var recModels []*model.GoalRecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Order("created_at DESC").
		Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find goal recommendations by user")
	}

	recs := make([]*entity.GoalRecommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, &entity.GoalRecommendation{
			RecommendID:         recM.RecommendID,
			UserID:              recM.UserID,
			Title:               recM.Title,
			Type:                recM.Type,
			StepsTarget:         recM.StepsTarget,
			WaterIntakeMLTarget: recM.WaterIntakeMLTarget,
			Description:         recM.Description,
			AlreadySet:          recM.AlreadySet,
			CreatedAt:           recM.CreatedAt,
		})
	}

	return recs, nil
}

// UpdateAlreadySet flags a history row owned by the user.
func (repo *recommendationRepository) UpdateAlreadySet(ctx context.Context, userID, recommendID uuid.UUID, alreadySet bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GoalRecommendationModel{}).
		Where("id = ? AND recommend_id = ?", userID, recommendID).
		Update("already_set", alreadySet)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update goal recommendation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}
