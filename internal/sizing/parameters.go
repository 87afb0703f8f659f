package sizing

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Units is the measurement system the recommendation should use.
type Units string

const (
	UnitsImperial Units = "Imperial"
	UnitsMetric   Units = "Metric"
)

// InsulationType is the conductor insulation family.
type InsulationType string

const (
	InsulationThermoset     InsulationType = "Thermoset"
	InsulationPVC           InsulationType = "PVC"
	InsulationXLPE          InsulationType = "XLPE"
	InsulationThermoplastic InsulationType = "Thermoplastic"
)

// Allowed enum values, in the order the form offers them.
var (
	AllUnits          = []Units{UnitsImperial, UnitsMetric}
	AllPhases         = []int{1, 3}
	AllInsulationType = []InsulationType{InsulationThermoset, InsulationPVC, InsulationXLPE, InsulationThermoplastic}
)

// Lower bounds for numeric fields.
const (
	MinLoadCurrent        = 0.0
	MinSupplyVoltage      = 0.0
	MinAmbientTemperature = -50.0
	MinMaxVoltageDrop     = 0.0
	MinRunsPerPhase       = 1
	MinTotalConductors    = 1
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time of day. It is encoded as YYYY-MM-DD.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Valid reports whether the date names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && t.Month() == d.Month
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParameterSet is a snapshot of the values a user entered for one sizing query.
type ParameterSet struct {
	// Project metadata
	ProjectName   string `json:"project_name"`
	JobNumber     string `json:"job_number"`
	LoadTagNumber string `json:"load_tag_number"`
	CheckedBy     string `json:"checked_by"`
	Date          Date   `json:"date"`

	// General settings
	Units          Units          `json:"units"`
	NumberOfPhases int            `json:"number_of_phases"`
	InsulationType InsulationType `json:"insulation_type"`

	// Load and electrical specification
	LoadCurrent   float64 `json:"load_current"`
	SupplyVoltage float64 `json:"supply_voltage"`
	PowerFactor   float64 `json:"power_factor"`

	// Conductor and installation details
	NumberOfRunsPerPhase int     `json:"number_of_runs_per_phase"`
	TotalConductors      int     `json:"total_conductors"`
	MaxVoltageDrop       float64 `json:"max_voltage_drop"`
	AmbientTemperature   float64 `json:"ambient_temperature"`
}

// Defaults returns the values the entry form starts with.
func Defaults(today time.Time) ParameterSet {
	return ParameterSet{
		Date:                 DateOf(today),
		Units:                UnitsMetric,
		NumberOfPhases:       3,
		InsulationType:       InsulationThermoset,
		LoadCurrent:          10.0,
		SupplyVoltage:        208.0,
		PowerFactor:          1.0,
		NumberOfRunsPerPhase: 1,
		TotalConductors:      1,
		MaxVoltageDrop:       0.05,
		AmbientTemperature:   40.0,
	}
}

// FieldError describes one constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field constraint and returns all violations.
// An empty result means the set may be submitted.
func Validate(p ParameterSet) []FieldError {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !p.Date.Valid() {
		add("date", "must be a valid calendar date")
	}
	if !validUnits(p.Units) {
		add("units", "must be one of %v", AllUnits)
	}
	if p.NumberOfPhases != 1 && p.NumberOfPhases != 3 {
		add("number_of_phases", "must be 1 or 3")
	}
	if !validInsulation(p.InsulationType) {
		add("insulation_type", "must be one of %v", AllInsulationType)
	}

	checkMin := func(field string, v, min float64) {
		if !finite(v) {
			add(field, "must be a finite number")
			return
		}
		if v < min {
			add(field, "must be >= %g", min)
		}
	}
	checkMin("load_current", p.LoadCurrent, MinLoadCurrent)
	checkMin("supply_voltage", p.SupplyVoltage, MinSupplyVoltage)

	switch {
	case !finite(p.PowerFactor):
		add("power_factor", "must be a finite number")
	case p.PowerFactor < 0 || p.PowerFactor > 1:
		add("power_factor", "must be between 0 and 1")
	}

	if p.NumberOfRunsPerPhase < MinRunsPerPhase {
		add("number_of_runs_per_phase", "must be >= %d", MinRunsPerPhase)
	}
	if p.TotalConductors < MinTotalConductors {
		add("total_conductors", "must be >= %d", MinTotalConductors)
	}
	checkMin("max_voltage_drop", p.MaxVoltageDrop, MinMaxVoltageDrop)
	checkMin("ambient_temperature", p.AmbientTemperature, MinAmbientTemperature)

	return errs
}

func validUnits(u Units) bool {
	for _, v := range AllUnits {
		if u == v {
			return true
		}
	}
	return false
}

func validInsulation(i InsulationType) bool {
	for _, v := range AllInsulationType {
		if i == v {
			return true
		}
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
