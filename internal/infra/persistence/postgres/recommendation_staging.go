package postgres

import (
	"context"

	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
	"livewell/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stagingBatchSize = 200

// recommendationStaging keeps the generated cycle in the 'recommendation_staging' table
// so a restart between the generate and send jobs does not lose it.
type recommendationStaging struct {
	db *gorm.DB
}

// NewRecommendationStaging is the constructor for the durable staging backend.
func NewRecommendationStaging(db *gorm.DB) repository.RecommendationStaging {
	return &recommendationStaging{db: db}
}

// ReplaceAll swaps the staged set inside one transaction.
func (s *recommendationStaging) ReplaceAll(ctx context.Context, recs []*entity.Recommendation) error {
	rows := make([]*model.RecommendationStagingModel, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, fromStagingDomain(rec))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.RecommendationStagingModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear staged recommendations")
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, stagingBatchSize).Error; err != nil {
			return errors.Wrap(err, "failed to stage recommendations")
		}

		return nil
	})

	return err
}

// ClaimAll deletes every staged row and returns what was deleted.
func (s *recommendationStaging) ClaimAll(ctx context.Context) ([]*entity.Recommendation, error) {
	var rows []*model.RecommendationStagingModel

	if err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Clauses(clause.Returning{}).
		Delete(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to claim staged recommendations")
	}

	recs := make([]*entity.Recommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, toStagingDomain(row))
	}

	return recs, nil
}

func toStagingDomain(data *model.RecommendationStagingModel) *entity.Recommendation {
	return &entity.Recommendation{
		UserID:              data.UserID,
		DeviceToken:         data.DeviceToken,
		TargetSteps:         data.TargetSteps,
		TargetWaterIntakeML: data.TargetWaterIntakeML,
		Description:         data.Description,
		CycleID:             data.CycleID,
		GeneratedAt:         data.GeneratedAt,
	}
}

func fromStagingDomain(data *entity.Recommendation) *model.RecommendationStagingModel {
	return &model.RecommendationStagingModel{
		UserID:              data.UserID,
		DeviceToken:         data.DeviceToken,
		TargetSteps:         data.TargetSteps,
		TargetWaterIntakeML: data.TargetWaterIntakeML,
		Description:         data.Description,
		CycleID:             data.CycleID,
		GeneratedAt:         data.GeneratedAt,
	}
}
