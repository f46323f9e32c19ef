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

type vaccinationRepository struct {
	db *gorm.DB
}

// NewVaccinationRepository is the constructor for vaccinationRepository.
func NewVaccinationRepository(db *gorm.DB) repository.VaccinationRepository {
	return &vaccinationRepository{
		db: db,
	}
}

func (repo *vaccinationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vaccination, error) {
	var vacModels []*model.VaccinationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Order("dose_date ASC").
		Find(&vacModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vaccinations by user")
	}

	vacs := make([]*entity.Vaccination, 0, len(vacModels))
	for _, vacM := range vacModels {
		vacs = append(vacs, toVaccinationDomain(vacM))
	}

	return vacs, nil
}

func (repo *vaccinationRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, vacID string) (*entity.Vaccination, error) {
	id, err := uuid.Parse(vacID)
	if err != nil {
		return nil, repository.ErrVaccinationNotFound
	}

	var vacM model.VaccinationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND vac_id = ?", userID, id).
		First(&vacM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVaccinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find vaccination")
	}

	return toVaccinationDomain(&vacM), nil
}

func (repo *vaccinationRepository) Create(ctx context.Context, vac *entity.Vaccination) error {
	vacM := fromVaccinationDomain(vac)

	if err := repo.db.WithContext(ctx).Create(vacM).Error; err != nil {
		return createError(err, "vaccination")
	}

	vac.VacID = vacM.VacID.String()
	vac.CreatedAt = vacM.CreatedAt

	return nil
}

func (repo *vaccinationRepository) Update(ctx context.Context, userID uuid.UUID, vacID string, vac *entity.Vaccination) error {
	id, err := uuid.Parse(vacID)
	if err != nil {
		return repository.ErrVaccinationNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VaccinationModel{}).
		Where("id = ? AND vac_id = ?", userID, id).
		Updates(map[string]any{
			"name":           vac.Name,
			"dose_date":      vac.DoseDate,
			"next_dose_date": vac.NextDoseDate,
			"location":       vac.Location,
			"notes":          vac.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vaccination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVaccinationNotFound
	}

	return nil
}

func (repo *vaccinationRepository) Delete(ctx context.Context, userID uuid.UUID, vacID string) error {
	id, err := uuid.Parse(vacID)
	if err != nil {
		return repository.ErrVaccinationNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND vac_id = ?", userID, id).
		Delete(&model.VaccinationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vaccination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVaccinationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVaccinationDomain(data *model.VaccinationModel) *entity.Vaccination {
	if data == nil {
		return nil
	}

	return &entity.Vaccination{
		VacID:        data.VacID.String(),
		UserID:       data.UserID,
		Name:         data.Name,
		DoseDate:     data.DoseDate,
		NextDoseDate: data.NextDoseDate,
		Location:     data.Location,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}

func fromVaccinationDomain(data *entity.Vaccination) *model.VaccinationModel {
	if data == nil {
		return nil
	}

	vacID, _ := uuid.Parse(data.VacID)

	return &model.VaccinationModel{
		VacID:        vacID,
		UserID:       data.UserID,
		Name:         data.Name,
		DoseDate:     data.DoseDate,
		NextDoseDate: data.NextDoseDate,
		Location:     data.Location,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}
