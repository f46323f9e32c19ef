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

// medicationRepository implements the repository.MedicationRepository interface.
type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository is the constructor for medicationRepository.
func NewMedicationRepository(db *gorm.DB) repository.MedicationRepository {
	return &medicationRepository{
		db: db,
	}
}

// FindByUser lists all medications of a user, oldest first.
func (repo *medicationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error) {
	var medModels []*model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Order("created_at ASC").
		Find(&medModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find medications by user")
	}

	meds := make([]*entity.Medication, 0, len(medModels))
	for _, medM := range medModels {
		meds = append(meds, toMedicationDomain(medM))
	}

	return meds, nil
}

// FindByUserAndID retrieves one medication owned by the user.
func (repo *medicationRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, medID string) (*entity.Medication, error) {
	id, err := uuid.Parse(medID)
	if err != nil {
		return nil, repository.ErrMedicationNotFound
	}

	var medM model.MedicationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND med_id = ?", userID, id).
		First(&medM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find medication")
	}

	return toMedicationDomain(&medM), nil
}

// Create persists a new medication.
func (repo *medicationRepository) Create(ctx context.Context, med *entity.Medication) error {
	medM := fromMedicationDomain(med)

	if err := repo.db.WithContext(ctx).Create(medM).Error; err != nil {
		return createError(err, "medication")
	}

	med.MedID = medM.MedID.String()
	med.CreatedAt = medM.CreatedAt

	return nil
}

// Update overwrites the mutable columns of a medication.
func (repo *medicationRepository) Update(ctx context.Context, userID uuid.UUID, medID string, med *entity.Medication) error {
	id, err := uuid.Parse(medID)
	if err != nil {
		return repository.ErrMedicationNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MedicationModel{}).
		Where("id = ? AND med_id = ?", userID, id).
		Updates(map[string]any{
			"name":           med.Name,
			"dose_value":     med.DoseValue,
			"dose_unit":      med.DoseUnit,
			"frequency_type": med.FrequencyType,
			"frequency_time": med.FrequencyTime,
			"start_date":     med.StartDate,
			"durations":      med.Durations,
			"notes":          med.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update medication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

// Delete removes a medication.
func (repo *medicationRepository) Delete(ctx context.Context, userID uuid.UUID, medID string) error {
	id, err := uuid.Parse(medID)
	if err != nil {
		return repository.ErrMedicationNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND med_id = ?", userID, id).
		Delete(&model.MedicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete medication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMedicationDomain(data *model.MedicationModel) *entity.Medication {
	if data == nil {
		return nil
	}

	return &entity.Medication{
		MedID:         data.MedID.String(),
		UserID:        data.UserID,
		Name:          data.Name,
		DoseValue:     data.DoseValue,
		DoseUnit:      data.DoseUnit,
		FrequencyType: data.FrequencyType,
		FrequencyTime: data.FrequencyTime,
		StartDate:     data.StartDate,
		Durations:     data.Durations,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
	}
}

// fromMedicationDomain leaves MedID zero for unparsable ids so the database generates one.
func fromMedicationDomain(data *entity.Medication) *model.MedicationModel {
	if data == nil {
		return nil
	}

	medID, _ := uuid.Parse(data.MedID)

	return &model.MedicationModel{
		MedID:         medID,
		UserID:        data.UserID,
		Name:          data.Name,
		DoseValue:     data.DoseValue,
		DoseUnit:      data.DoseUnit,
		FrequencyType: data.FrequencyType,
		FrequencyTime: data.FrequencyTime,
		StartDate:     data.StartDate,
		Durations:     data.Durations,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
	}
}
