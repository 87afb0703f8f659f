package sizing

import (
	"strconv"
	"strings"
)

// Compose builds the natural-language query for a parameter set.
//
// The output is fully determined by p: project metadata comes first, then the
// load and electrical specification, then conductor and installation details.
// Empty text fields are rendered as empty values.
func Compose(p ParameterSet) string {
	var b strings.Builder

	b.WriteString("Project Name: ")
	b.WriteString(p.ProjectName)
	b.WriteString(", Job Number: ")
	b.WriteString(p.JobNumber)
	b.WriteString(", Load Tag Number: ")
	b.WriteString(p.LoadTagNumber)
	b.WriteString(", Checked By: ")
	b.WriteString(p.CheckedBy)
	b.WriteString(", Date: ")
	b.WriteString(p.Date.String())
	b.WriteString(". ")

	b.WriteString("What conductor size is needed for a ")
	b.WriteString(formatNumber(p.LoadCurrent))
	b.WriteString("A load at ")
	b.WriteString(formatNumber(p.SupplyVoltage))
	b.WriteString("V using ")
	b.WriteString(string(p.InsulationType))
	b.WriteString(" insulation? ")

	b.WriteString("The units are ")
	b.WriteString(string(p.Units))
	b.WriteString(", number of phases is ")
	b.WriteString(strconv.Itoa(p.NumberOfPhases))
	b.WriteString(", number of runs per phase is ")
	b.WriteString(strconv.Itoa(p.NumberOfRunsPerPhase))
	b.WriteString(", power factor is ")
	b.WriteString(formatNumber(p.PowerFactor))
	b.WriteString(", total number of power conductors in raceway is ")
	b.WriteString(strconv.Itoa(p.TotalConductors))
	b.WriteString(", maximum allowable voltage drop is ")
	b.WriteString(formatNumber(p.MaxVoltageDrop))
	b.WriteString(", and the ambient temperature is ")
	b.WriteString(formatNumber(p.AmbientTemperature))
	b.WriteString("°C.")

	return b.String()
}

// formatNumber renders the shortest exact representation of f, keeping a
// trailing ".0" on integral values so 208 reads as "208.0". Magnitudes below
// 1e-4 or from 1e16 up use exponent form ("1e-05", "1e+16").
func formatNumber(f float64) string {
	// Scientific notation below 1e-4 and from 1e16 up, fixed point otherwise.
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if i := strings.IndexByte(sci, 'e'); i >= 0 {
		if exp, err := strconv.Atoi(sci[i+1:]); err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
