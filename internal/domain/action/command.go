package action

import (
	"fmt"
	"math"
	"reflect"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Invocation is a raw request from the model to run one named action.
type Invocation struct {
	Name string
	Args map[string]any
}

// Command is a validated, strongly typed action ready for dispatch.
type Command interface {
	ActionName() string
}

// MedicationCreate carries the arguments of create_new_medication_list.
type MedicationCreate struct {
	Name          string  `mapstructure:"name" validate:"required"`
	DoseValue     int     `mapstructure:"dose_value" validate:"gt=0"`
	DoseUnit      string  `mapstructure:"dose_unit" validate:"required"`
	FrequencyType string  `mapstructure:"frequency_type" validate:"required"`
	FrequencyTime *string `mapstructure:"frequency_time" validate:"omitempty,datetime=15:04"`
	StartDate     *string `mapstructure:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Durations     *int    `mapstructure:"durations" validate:"omitempty,gte=0"`
	Notes         *string `mapstructure:"notes"`
}

// ActionName implements Command.
func (MedicationCreate) ActionName() string { return CreateMedication }

// ToEntity builds the record to persist. today and defaultTime fill the two optional
// scheduling fields when the model left them out.
func (c *MedicationCreate) ToEntity(userID uuid.UUID, today, defaultTime string) *entity.Medication {
	med := &entity.Medication{
		UserID:        userID,
		Name:          c.Name,
		DoseValue:     c.DoseValue,
		DoseUnit:      c.DoseUnit,
		FrequencyType: c.FrequencyType,
		FrequencyTime: defaultTime,
		StartDate:     today,
		Durations:     c.Durations,
		Notes:         c.Notes,
	}
	if c.FrequencyTime != nil {
		med.FrequencyTime = *c.FrequencyTime
	}
	if c.StartDate != nil {
		med.StartDate = *c.StartDate
	}

	return med
}

// MedicationPatch is a sparse update: nil fields keep their persisted value.
type MedicationPatch struct {
	Name          *string `mapstructure:"name" validate:"omitempty,min=1"`
	DoseValue     *int    `mapstructure:"dose_value" validate:"omitempty,gt=0"`
	DoseUnit      *string `mapstructure:"dose_unit" validate:"omitempty,min=1"`
	FrequencyType *string `mapstructure:"frequency_type" validate:"omitempty,min=1"`
	FrequencyTime *string `mapstructure:"frequency_time" validate:"omitempty,datetime=15:04"`
	StartDate     *string `mapstructure:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Durations     *int    `mapstructure:"durations" validate:"omitempty,gte=0"`
	Notes         *string `mapstructure:"notes"`
}

// ApplyTo overlays the present fields onto med. Applying the same patch twice is a no-op.
func (p *MedicationPatch) ApplyTo(med *entity.Medication) {
	if p.Name != nil {
		med.Name = *p.Name
	}
	if p.DoseValue != nil {
		med.DoseValue = *p.DoseValue
	}
	if p.DoseUnit != nil {
		med.DoseUnit = *p.DoseUnit
	}
	if p.FrequencyType != nil {
		med.FrequencyType = *p.FrequencyType
	}
	if p.FrequencyTime != nil {
		med.FrequencyTime = *p.FrequencyTime
	}
	if p.StartDate != nil {
		med.StartDate = *p.StartDate
	}
	if p.Durations != nil {
		durations := *p.Durations
		med.Durations = &durations
	}
	if p.Notes != nil {
		notes := *p.Notes
		med.Notes = &notes
	}
}

// MedicationUpdate carries the arguments of update_medication_list.
type MedicationUpdate struct {
	MedID           string `mapstructure:"med_id" validate:"required"`
	MedicationPatch `mapstructure:",squash"`
}

// ActionName implements Command.
func (MedicationUpdate) ActionName() string { return UpdateMedication }

// MedicationDelete carries the arguments of delete_medication_list.
type MedicationDelete struct {
	MedID string `mapstructure:"med_id" validate:"required"`
}

// ActionName implements Command.
func (MedicationDelete) ActionName() string { return DeleteMedication }

// VaccinationCreate carries the arguments of create_new_vaccination_list.
type VaccinationCreate struct {
	Name         string  `mapstructure:"name" validate:"required"`
	DoseDate     string  `mapstructure:"dose_date" validate:"required,datetime=2006-01-02"`
	NextDoseDate *string `mapstructure:"next_dose_date" validate:"omitempty,datetime=2006-01-02"`
	Location     *string `mapstructure:"location"`
	Notes        *string `mapstructure:"notes"`
}

// ActionName implements Command.
func (VaccinationCreate) ActionName() string { return CreateVaccination }

// ToEntity builds the record to persist.
func (c *VaccinationCreate) ToEntity(userID uuid.UUID) *entity.Vaccination {
	return &entity.Vaccination{
		UserID:       userID,
		Name:         c.Name,
		DoseDate:     c.DoseDate,
		NextDoseDate: c.NextDoseDate,
		Location:     c.Location,
		Notes:        c.Notes,
	}
}

// VaccinationPatch is a sparse update: nil fields keep their persisted value.
type VaccinationPatch struct {
	Name         *string `mapstructure:"name" validate:"omitempty,min=1"`
	DoseDate     *string `mapstructure:"dose_date" validate:"omitempty,datetime=2006-01-02"`
	NextDoseDate *string `mapstructure:"next_dose_date" validate:"omitempty,datetime=2006-01-02"`
	Location     *string `mapstructure:"location"`
	Notes        *string `mapstructure:"notes"`
}

// ApplyTo overlays the present fields onto vac. Applying the same patch twice is a no-op.
func (p *VaccinationPatch) ApplyTo(vac *entity.Vaccination) {
	if p.Name != nil {
		vac.Name = *p.Name
	}
	if p.DoseDate != nil {
		vac.DoseDate = *p.DoseDate
	}
	if p.NextDoseDate != nil {
		next := *p.NextDoseDate
		vac.NextDoseDate = &next
	}
	if p.Location != nil {
		location := *p.Location
		vac.Location = &location
	}
	if p.Notes != nil {
		notes := *p.Notes
		vac.Notes = &notes
	}
}

// VaccinationUpdate carries the arguments of update_vaccination_list.
type VaccinationUpdate struct {
	VacID            string `mapstructure:"vac_id" validate:"required"`
	VaccinationPatch `mapstructure:",squash"`
}

// ActionName implements Command.
func (VaccinationUpdate) ActionName() string { return UpdateVaccination }

// VaccinationDelete carries the arguments of delete_vaccination_list.
type VaccinationDelete struct {
	VacID string `mapstructure:"vac_id" validate:"required"`
}

// ActionName implements Command.
func (VaccinationDelete) ActionName() string { return DeleteVaccination }

var validate = validator.New(validator.WithRequiredStructEnabled())

// wholeNumberHook refuses to narrow a fractional or non-finite float into an integer field.
func wholeNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, errors.Errorf("%v is not a whole number", f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, errors.Errorf("%v is out of range", f)
	}

	return data, nil
}

// Parse resolves the invocation to its typed command and validates the arguments.
// Unknown names and malformed arguments both return a validation failure.
func Parse(inv Invocation) (Command, error) {
	var cmd Command
	switch inv.Name {
	case CreateMedication:
		cmd = &MedicationCreate{}
	case UpdateMedication:
		cmd = &MedicationUpdate{}
	case DeleteMedication:
		cmd = &MedicationDelete{}
	case CreateVaccination:
		cmd = &VaccinationCreate{}
	case UpdateVaccination:
		cmd = &VaccinationUpdate{}
	case DeleteVaccination:
		cmd = &VaccinationDelete{}
	default:
		return nil, domainerrors.ErrUnknownAction.WithDetails(fmt.Sprintf("action %q is not declared", inv.Name))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cmd,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if err := decoder.Decode(inv.Args); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s: %v", inv.Name, err))
	}

	if err := validate.Struct(cmd); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s: %v", inv.Name, err))
	}

	return cmd, nil
}
