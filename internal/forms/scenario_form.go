package forms

import "sort"

// Field keys used in Errors.
const (
	FieldScenarioName = "scenarioName"
	FieldTherapyArea  = "therapyArea"
	FieldIndication   = "indication"
	FieldTimeframe    = "timeframe"
	FieldEmail        = "email"
	FieldPassword     = "password"
)

// Errors maps a field key to its validation message. Fields without a
// problem are absent.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string { return e[field] }

// ScenarioFormData is what the create-scenario modal hands to the
// simulation inputs. It is not modified after creation.
type ScenarioFormData struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	ScenarioName string `json:"scenario_name" yaml:"scenario_name"`
	TherapyArea  string `json:"therapy_area" yaml:"therapy_area"`
	Indication   string `json:"indication" yaml:"indication"`
	StartDate    string `json:"start_date" yaml:"start_date"`
	EndDate      string `json:"end_date" yaml:"end_date"`
}

// CreateScenarioForm holds the create-scenario modal state.
type CreateScenarioForm struct {
	scenarioName string
	therapyArea  string
	indication   string
	dates        DateRange

	catalog   map[string][]string
	areas     []string
	available []string
	errors    Errors

	onSubmit func(ScenarioFormData)
	newID    func() string
}

// NewCreateScenarioForm builds an empty form over a therapy area to
// indication catalog. onSubmit may be nil.
func NewCreateScenarioForm(catalog map[string][]string, onSubmit func(ScenarioFormData)) *CreateScenarioForm {
	areas := make([]string, 0, len(catalog))
	for area := range catalog {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	return &CreateScenarioForm{
		catalog:  catalog,
		areas:    areas,
		errors:   Errors{},
		onSubmit: onSubmit,
	}
}

// WithIDGenerator stamps every submitted ScenarioFormData with gen().
func (f *CreateScenarioForm) WithIDGenerator(gen func() string) *CreateScenarioForm {
	f.newID = gen
	return f
}

// TherapyAreas returns the sorted therapy areas.
func (f *CreateScenarioForm) TherapyAreas() []string {
	return append([]string(nil), f.areas...)
}

// AvailableIndications returns the indications for the chosen therapy area.
func (f *CreateScenarioForm) AvailableIndications() []string {
	return append([]string(nil), f.available...)
}

func (f *CreateScenarioForm) ScenarioName() string { return f.scenarioName }
func (f *CreateScenarioForm) TherapyArea() string  { return f.therapyArea }
func (f *CreateScenarioForm) Indication() string   { return f.indication }
func (f *CreateScenarioForm) Dates() DateRange     { return f.dates }

// SetScenarioName updates the name and clears its error.
func (f *CreateScenarioForm) SetScenarioName(name string) {
	f.scenarioName = name
	delete(f.errors, FieldScenarioName)
}

// SetTherapyArea changes the therapy area. The indication is always reset
// and the indication list follows the new area.
func (f *CreateScenarioForm) SetTherapyArea(area string) {
	f.therapyArea = area
	f.indication = ""
	f.available = append([]string(nil), f.catalog[area]...)
	delete(f.errors, FieldTherapyArea)
}

// SetIndication updates the indication and clears its error.
func (f *CreateScenarioForm) SetIndication(indication string) {
	f.indication = indication
	delete(f.errors, FieldIndication)
}

// SetStartDate sets the forecast start (YYYY-MM-DD).
func (f *CreateScenarioForm) SetStartDate(date string) {
	f.dates.Start = date
	delete(f.errors, FieldTimeframe)
}

// SetEndDate sets the forecast end (YYYY-MM-DD).
func (f *CreateScenarioForm) SetEndDate(date string) {
	f.dates.End = date
	delete(f.errors, FieldTimeframe)
}

// SetDates replaces the whole timeframe, as the presets do.
func (f *CreateScenarioForm) SetDates(r DateRange) {
	f.dates = r
	delete(f.errors, FieldTimeframe)
}

// Errors returns the messages from the last failed submit.
func (f *CreateScenarioForm) Errors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Validate checks that every field is present.
func (f *CreateScenarioForm) Validate() Errors {
	errs := Errors{}
	if f.scenarioName == "" {
		errs[FieldScenarioName] = "Scenario name is required"
	}
	if f.therapyArea == "" {
		errs[FieldTherapyArea] = "Therapy area is required"
	}
	if f.indication == "" {
		errs[FieldIndication] = "Indication is required"
	}
	if f.dates.Start == "" || f.dates.End == "" {
		errs[FieldTimeframe] = "Both start and end dates are required"
	}
	return errs
}

// Submit validates the form. On success the callback fires once with the
// captured data and the form resets; on failure the errors are kept and
// returned.
func (f *CreateScenarioForm) Submit() (ScenarioFormData, Errors) {
	if errs := f.Validate(); !errs.Empty() {
		f.errors = errs
		return ScenarioFormData{}, f.Errors()
	}

	data := ScenarioFormData{
		ScenarioName: f.scenarioName,
		TherapyArea:  f.therapyArea,
		Indication:   f.indication,
		StartDate:    f.dates.Start,
		EndDate:      f.dates.End,
	}
	if f.newID != nil {
		data.ID = f.newID()
	}

	f.Reset()
	if f.onSubmit != nil {
		f.onSubmit(data)
	}
	return data, nil
}

// Reset clears every field and error.
func (f *CreateScenarioForm) Reset() {
	f.scenarioName = ""
	f.therapyArea = ""
	f.indication = ""
	f.dates = DateRange{}
	f.available = nil
	f.errors = Errors{}
}
