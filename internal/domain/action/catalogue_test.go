package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_Entries(t *testing.T) {
	decls := Catalogue()
	require.Len(t, decls, 6)

	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		CreateMedication, UpdateMedication, DeleteMedication,
		CreateVaccination, UpdateVaccination, DeleteVaccination,
	}, names)
}

func TestCatalogue_RequiredParams(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		op       Operation
		target   Target
	}{
		{CreateMedication, []string{"name", "dose_value", "dose_unit", "frequency_type"}, OperationCreate, TargetMedication},
		{UpdateMedication, []string{"med_id"}, OperationUpdate, TargetMedication},
		{DeleteMedication, []string{"med_id"}, OperationDelete, TargetMedication},
		{CreateVaccination, []string{"name", "dose_date"}, OperationCreate, TargetVaccination},
		{UpdateVaccination, []string{"vac_id"}, OperationUpdate, TargetVaccination},
		{DeleteVaccination, []string{"vac_id"}, OperationDelete, TargetVaccination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.required, d.RequiredParams())
			assert.Equal(t, tt.op, d.Operation)
			assert.Equal(t, tt.target, d.Target)
		})
	}
}

func TestCatalogue_UpdateFieldsAreNullable(t *testing.T) {
	d, ok := Lookup(UpdateMedication)
	require.True(t, ok)
	require.Len(t, d.Params, 9)

	for _, p := range d.Params {
		if p.Name == "med_id" {
			assert.False(t, p.Nullable)

			continue
		}
		assert.True(t, p.Nullable, p.Name)
		assert.False(t, p.Required, p.Name)
	}
}

func TestCatalogue_ReturnsCopies(t *testing.T) {
	decls := Catalogue()
	decls[0].Params[0].Name = "mutated"

	d, ok := Lookup(CreateMedication)
	require.True(t, ok)
	assert.Equal(t, "name", d.Params[0].Name)
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestDeclaration_Confirmation(t *testing.T) {
	tests := map[string]string{
		CreateMedication:  "Medication added successfully",
		UpdateMedication:  "Medication updated successfully",
		DeleteVaccination: "Vaccination deleted successfully",
	}

	for name, want := range tests {
		d, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, want, d.Confirmation())
	}
}
