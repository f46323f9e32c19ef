package action

import (
	"math"
	"testing"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse_CreateMedication_AppliesDefaults(t *testing.T) {
	cmd, err := Parse(Invocation{
		Name: CreateMedication,
		Args: map[string]any{
			"name":           "Aspirin",
			"dose_value":     float64(100),
			"dose_unit":      "mg",
			"frequency_type": "Daily",
		},
	})
	require.NoError(t, err)

	create, ok := cmd.(*MedicationCreate)
	require.True(t, ok)

	userID := uuid.New()
	med := create.ToEntity(userID, "2026-10-17", "08:00")
	assert.Equal(t, userID, med.UserID)
	assert.Equal(t, "Aspirin", med.Name)
	assert.Equal(t, 100, med.DoseValue)
	assert.Equal(t, "2026-10-17", med.StartDate)
	assert.Equal(t, "08:00", med.FrequencyTime)
	assert.Nil(t, med.Durations)
	assert.Nil(t, med.Notes)
}

func TestParse_CreateMedication_KeepsSuppliedSchedule(t *testing.T) {
	cmd, err := Parse(Invocation{
		Name: CreateMedication,
		Args: map[string]any{
			"name":           "Metformin",
			"dose_value":     500,
			"dose_unit":      "mg",
			"frequency_type": "Twice a day",
			"frequency_time": "21:30",
			"start_date":     "2026-01-02",
			"durations":      float64(30),
		},
	})
	require.NoError(t, err)

	med := cmd.(*MedicationCreate).ToEntity(uuid.New(), "2026-10-17", "08:00")
	assert.Equal(t, "21:30", med.FrequencyTime)
	assert.Equal(t, "2026-01-02", med.StartDate)
	require.NotNil(t, med.Durations)
	assert.Equal(t, 30, *med.Durations)
}

func TestParse_CreateVaccination(t *testing.T) {
	cmd, err := Parse(Invocation{
		Name: CreateVaccination,
		Args: map[string]any{"name": "Influenza", "dose_date": "2026-10-01", "location": "City clinic"},
	})
	require.NoError(t, err)

	vac := cmd.(*VaccinationCreate).ToEntity(uuid.New())
	assert.Equal(t, "Influenza", vac.Name)
	assert.Equal(t, "2026-10-01", vac.DoseDate)
	require.NotNil(t, vac.Location)
	assert.Equal(t, "City clinic", *vac.Location)
	assert.Nil(t, vac.NextDoseDate)
}

func TestParse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
	}{
		{
			name: "missing required medication field",
			inv:  Invocation{Name: CreateMedication, Args: map[string]any{"name": "Aspirin", "dose_unit": "mg", "frequency_type": "Daily"}},
		},
		{
			name: "wrong date layout",
			inv: Invocation{Name: CreateMedication, Args: map[string]any{
				"name": "Aspirin", "dose_value": 1, "dose_unit": "mg", "frequency_type": "Daily", "start_date": "17/10/2026",
			}},
		},
		{
			name: "undeclared argument",
			inv:  Invocation{Name: DeleteMedication, Args: map[string]any{"med_id": "m1", "force": true}},
		},
		{
			name: "missing record id",
			inv:  Invocation{Name: UpdateVaccination, Args: map[string]any{"name": "Tdap"}},
		},
		{
			name: "non numeric dose",
			inv:  Invocation{Name: UpdateMedication, Args: map[string]any{"med_id": "m1", "dose_value": "lots"}},
		},
		{
			name: "fractional dose on create",
			inv: Invocation{Name: CreateMedication, Args: map[string]any{
				"name": "Aspirin", "dose_value": float64(2.5), "dose_unit": "mg", "frequency_type": "Daily",
			}},
		},
		{
			name: "fractional durations on update",
			inv:  Invocation{Name: UpdateMedication, Args: map[string]any{"med_id": "m1", "durations": float64(1.5)}},
		},
		{
			name: "non finite dose",
			inv:  Invocation{Name: UpdateMedication, Args: map[string]any{"med_id": "m1", "dose_value": math.Inf(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.inv)
			require.Error(t, err)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.True(t, domainerrors.IsValidationFailure(err))
		})
	}
}

func TestParse_UnknownAction(t *testing.T) {
	cmd, err := Parse(Invocation{Name: "drop_all_tables", Args: map[string]any{}})
	require.Error(t, err)
	assert.Nil(t, cmd)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAction)
	assert.True(t, domainerrors.IsValidationFailure(err))
}

func TestMedicationPatch_NullFieldsKeepPersistedValues(t *testing.T) {
	cmd, err := Parse(Invocation{
		Name: UpdateMedication,
		Args: map[string]any{"med_id": "m1", "notes": nil, "dose_value": float64(200)},
	})
	require.NoError(t, err)

	update := cmd.(*MedicationUpdate)
	assert.Equal(t, "m1", update.MedID)

	current := &entity.Medication{MedID: "m1", Name: "X", DoseValue: 100, Notes: ptr("old")}
	update.ApplyTo(current)

	assert.Equal(t, "X", current.Name)
	assert.Equal(t, 200, current.DoseValue)
	require.NotNil(t, current.Notes)
	assert.Equal(t, "old", *current.Notes)
}

func TestMedicationPatch_Idempotent(t *testing.T) {
	patch := MedicationPatch{DoseValue: ptr(200), Notes: ptr("after meals"), Durations: ptr(14)}

	once := &entity.Medication{MedID: "m1", Name: "X", DoseValue: 100, FrequencyTime: "08:00"}
	patch.ApplyTo(once)

	twice := &entity.Medication{MedID: "m1", Name: "X", DoseValue: 100, FrequencyTime: "08:00"}
	patch.ApplyTo(twice)
	patch.ApplyTo(twice)

	assert.Equal(t, once, twice)
}

func TestVaccinationPatch_ApplyTo(t *testing.T) {
	cmd, err := Parse(Invocation{
		Name: UpdateVaccination,
		Args: map[string]any{"vac_id": "v1", "next_dose_date": "2027-01-01", "location": nil},
	})
	require.NoError(t, err)

	current := &entity.Vaccination{VacID: "v1", Name: "Hep B", DoseDate: "2026-01-01", Location: ptr("Clinic")}
	cmd.(*VaccinationUpdate).ApplyTo(current)

	assert.Equal(t, "Hep B", current.Name)
	require.NotNil(t, current.NextDoseDate)
	assert.Equal(t, "2027-01-01", *current.NextDoseDate)
	assert.Equal(t, "Clinic", *current.Location)
}
