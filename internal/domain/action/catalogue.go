// Package action describes the record-mutating actions the chat assistant may ask the
// server to perform, and turns loosely typed model arguments into validated commands.
package action

import (
	"slices"
	"strings"
)

// Action names offered to the language model.
const (
	CreateMedication  = "create_new_medication_list"
	UpdateMedication  = "update_medication_list"
	DeleteMedication  = "delete_medication_list"
	CreateVaccination = "create_new_vaccination_list"
	UpdateVaccination = "update_vaccination_list"
	DeleteVaccination = "delete_vaccination_list"
)

// ParamType is the primitive type of a declared parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
)

// Operation is the record-store verb an action maps to.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Target is the record collection an action mutates.
type Target string

const (
	TargetMedication  Target = "medication"
	TargetVaccination Target = "vaccination"
)

// Param describes one named argument of an action.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Nullable    bool
}

// Declaration is one immutable catalogue entry.
type Declaration struct {
	Name        string
	Description string
	Params      []Param
	Operation   Operation
	Target      Target
}

// RequiredParams lists the names of the parameters that must be supplied.
func (d Declaration) RequiredParams() []string {
	required := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return required
}

var medicationFields = []Param{
	{Name: "name", Type: TypeString, Description: "Name of the medication"},
	{Name: "dose_value", Type: TypeInteger, Description: "Dosage value of the medication"},
	{Name: "dose_unit", Type: TypeString, Description: "Unit of the dosage of the medication"},
	{Name: "frequency_type", Type: TypeString, Description: "Frequency type of the medication (Daily, Twice a day, Weekly)"},
	{Name: "frequency_time", Type: TypeString, Description: "Time of the medication (e.g. 08:00)"},
	{Name: "start_date", Type: TypeString, Description: "Start date of the medication (YYYY-MM-DD)"},
	{Name: "durations", Type: TypeInteger, Description: "Duration days of the medication"},
	{Name: "notes", Type: TypeString, Description: "Notes of the medication"},
}

var vaccinationFields = []Param{
	{Name: "name", Type: TypeString, Description: "Name of the vaccination"},
	{Name: "dose_date", Type: TypeString, Description: "Date of the vaccination (YYYY-MM-DD)"},
	{Name: "next_dose_date", Type: TypeString, Description: "Date of the next dose (YYYY-MM-DD)"},
	{Name: "location", Type: TypeString, Description: "Location where the vaccination was administered"},
	{Name: "notes", Type: TypeString, Description: "Notes of the vaccination"},
}

// createParams marks the named fields required.
func createParams(fields []Param, required ...string) []Param {
	params := slices.Clone(fields)
	for i := range params {
		params[i].Required = slices.Contains(required, params[i].Name)
	}

	return params
}

// updateParams prepends the record id and makes every other field nullable.
func updateParams(idParam Param, fields []Param) []Param {
	params := make([]Param, 0, len(fields)+1)
	params = append(params, idParam)
	for _, f := range fields {
		f.Nullable = true
		params = append(params, f)
	}

	return params
}

var catalogue = []Declaration{
	{
		Name:        CreateMedication,
		Description: "Create a new medication list for the user in database.",
		Params:      createParams(medicationFields, "name", "dose_value", "dose_unit", "frequency_type"),
		Operation:   OperationCreate,
		Target:      TargetMedication,
	},
	{
		Name:        UpdateMedication,
		Description: "Update an existing medication list for the user in database.",
		Params: updateParams(
			Param{Name: "med_id", Type: TypeString, Description: "The unique ID of the medication to update", Required: true},
			medicationFields,
		),
		Operation: OperationUpdate,
		Target:    TargetMedication,
	},
	{
		Name:        DeleteMedication,
		Description: "Delete an existing medication list for the user in database.",
		Params: []Param{
			{Name: "med_id", Type: TypeString, Description: "The unique ID of the medication to delete", Required: true},
		},
		Operation: OperationDelete,
		Target:    TargetMedication,
	},
	{
		Name:        CreateVaccination,
		Description: "Create a new vaccination record for the user in database.",
		Params:      createParams(vaccinationFields, "name", "dose_date"),
		Operation:   OperationCreate,
		Target:      TargetVaccination,
	},
	{
		Name:        UpdateVaccination,
		Description: "Update an existing vaccination record for the user in database.",
		Params: updateParams(
			Param{Name: "vac_id", Type: TypeString, Description: "The unique ID of the vaccination to update", Required: true},
			vaccinationFields,
		),
		Operation: OperationUpdate,
		Target:    TargetVaccination,
	},
	{
		Name:        DeleteVaccination,
		Description: "Delete an existing vaccination record for the user in database.",
		Params: []Param{
			{Name: "vac_id", Type: TypeString, Description: "The unique ID of the vaccination to delete", Required: true},
		},
		Operation: OperationDelete,
		Target:    TargetVaccination,
	},
}

// Catalogue returns the six declarations in a stable order.
// The returned slice is a copy; callers may not mutate the catalogue.
func Catalogue() []Declaration {
	out := make([]Declaration, len(catalogue))
	for i, d := range catalogue {
		d.Params = slices.Clone(d.Params)
		out[i] = d
	}

	return out
}

// Lookup finds a declaration by action name.
func Lookup(name string) (Declaration, bool) {
	for _, d := range catalogue {
		if d.Name == name {
			d.Params = slices.Clone(d.Params)

			return d, true
		}
	}

	return Declaration{}, false
}

var confirmationVerbs = map[Operation]string{
	OperationCreate: "added",
	OperationUpdate: "updated",
	OperationDelete: "deleted",
}

// Confirmation is the short message reported to the model once the action succeeded,
// e.g. "Medication added successfully".
func (d Declaration) Confirmation() string {
	target := string(d.Target)
	if target != "" {
		target = strings.ToUpper(target[:1]) + target[1:]
	}

	return target + " " + confirmationVerbs[d.Operation] + " successfully"
}
