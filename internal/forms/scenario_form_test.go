package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = map[string][]string{
	"Oncology":   {"Breast Cancer", "Melanoma"},
	"Cardiology": {"Hypertension"},
	"Immunology": {"Psoriasis (PsO)"},
}

func filledForm(calls *[]ScenarioFormData) *CreateScenarioForm {
	f := NewCreateScenarioForm(testCatalog, func(d ScenarioFormData) {
		*calls = append(*calls, d)
	})
	f.SetScenarioName("Q3 launch")
	f.SetTherapyArea("Oncology")
	f.SetIndication("Melanoma")
	f.SetStartDate("2025-01-01")
	f.SetEndDate("2027-01-01")
	return f
}

func TestCreateScenarioSubmitSuccess(t *testing.T) {
	var calls []ScenarioFormData
	f := filledForm(&calls)

	data, errs := f.Submit()
	require.True(t, errs.Empty())

	want := ScenarioFormData{
		ScenarioName: "Q3 launch",
		TherapyArea:  "Oncology",
		Indication:   "Melanoma",
		StartDate:    "2025-01-01",
		EndDate:      "2027-01-01",
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("submitted data mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, calls, 1)
	assert.Equal(t, want, calls[0])

	// form resets after success
	assert.Empty(t, f.ScenarioName())
	assert.Empty(t, f.TherapyArea())
	assert.Empty(t, f.AvailableIndications())
	assert.False(t, f.Dates().Complete())
}

func TestCreateScenarioSubmitMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		clear func(f *CreateScenarioForm)
		field string
		msg   string
	}{
		{"name", func(f *CreateScenarioForm) { f.SetScenarioName("") }, FieldScenarioName, "Scenario name is required"},
		{"therapy area", func(f *CreateScenarioForm) { f.SetTherapyArea("") }, FieldTherapyArea, "Therapy area is required"},
		{"indication", func(f *CreateScenarioForm) { f.SetIndication("") }, FieldIndication, "Indication is required"},
		{"start date", func(f *CreateScenarioForm) { f.SetStartDate("") }, FieldTimeframe, "Both start and end dates are required"},
		{"end date", func(f *CreateScenarioForm) { f.SetEndDate("") }, FieldTimeframe, "Both start and end dates are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []ScenarioFormData
			f := filledForm(&calls)
			tt.clear(f)

			_, errs := f.Submit()
			assert.Equal(t, tt.msg, errs.Get(tt.field))
			assert.Empty(t, calls)
			assert.Equal(t, tt.msg, f.Errors().Get(tt.field))
		})
	}
}

func TestClearingTherapyAreaAlsoFlagsIndication(t *testing.T) {
	var calls []ScenarioFormData
	f := filledForm(&calls)
	f.SetTherapyArea("")

	_, errs := f.Submit()
	assert.Len(t, errs, 2)
	assert.NotEmpty(t, errs.Get(FieldIndication))
}

func TestSetTherapyAreaResetsIndication(t *testing.T) {
	f := NewCreateScenarioForm(testCatalog, nil)
	f.SetTherapyArea("Oncology")
	assert.Equal(t, []string{"Breast Cancer", "Melanoma"}, f.AvailableIndications())

	f.SetIndication("Melanoma")
	f.SetTherapyArea("Cardiology")
	assert.Empty(t, f.Indication())
	assert.Equal(t, []string{"Hypertension"}, f.AvailableIndications())
}

func TestTherapyAreasSorted(t *testing.T) {
	f := NewCreateScenarioForm(testCatalog, nil)
	assert.Equal(t, []string{"Cardiology", "Immunology", "Oncology"}, f.TherapyAreas())
}

func TestEditingClearsFieldError(t *testing.T) {
	f := NewCreateScenarioForm(testCatalog, nil)
	_, errs := f.Submit()
	require.Len(t, errs, 4)

	f.SetScenarioName("x")
	f.SetEndDate("2026-01-01")
	got := f.Errors()
	assert.Empty(t, got.Get(FieldScenarioName))
	assert.Empty(t, got.Get(FieldTimeframe))
	assert.NotEmpty(t, got.Get(FieldTherapyArea))
}

func TestIDGenerator(t *testing.T) {
	var calls []ScenarioFormData
	f := filledForm(&calls).WithIDGenerator(func() string { return "draft-1" })

	data, errs := f.Submit()
	require.Nil(t, errs)
	assert.Equal(t, "draft-1", data.ID)
}

func TestLoginForm(t *testing.T) {
	var f LoginForm
	errs := f.Submit()
	assert.Equal(t, "Email is required", errs.Get(FieldEmail))
	assert.Equal(t, "Password is required", errs.Get(FieldPassword))

	f.SetEmail("a@b.com")
	assert.Empty(t, f.Errors().Get(FieldEmail))
	assert.NotEmpty(t, f.Errors().Get(FieldPassword))

	f.SetPassword("secret")
	assert.Nil(t, f.Submit())
}

func TestRequestAccessForm(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "Please enter a valid email address"},
		{"nobody", "Please enter a valid email address"},
		{"someone@pharma.com", ""},
	}
	for _, tt := range tests {
		var f RequestAccessForm
		f.SetEmail(tt.email)
		assert.Equal(t, tt.want, f.Submit(), tt.email)
	}
}
