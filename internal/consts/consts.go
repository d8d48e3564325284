// Package consts holds process-wide numeric defaults for the solver core:
// the unit-suffix table used by the netlist parser and the default Newton
// iteration parameters used by the transient driver.
package consts

// UnitSuffix pairs a netlist value suffix with its scale factor. ParseValue
// scans UnitSuffixes in order and takes the first suffix that ends the
// token and leaves a parsable number; "meg" is listed first.
type UnitSuffix struct {
	Suffix string
	Scale  float64
}

// UnitSuffixes is the fixed, ordered suffix table from the netlist
// grammar.
var UnitSuffixes = []UnitSuffix{
	{"meg", 1e6},
	{"f", 1e-15},
	{"p", 1e-12},
	{"n", 1e-9},
	{"u", 1e-6},
	{"m", 1e-3},
	{"k", 1e3},
	{"g", 1e9},
	{"t", 1e12},
}

const (
	// DefaultMaxIterations bounds the Newton loop per time step.
	DefaultMaxIterations = 100
	// DefaultTolerance is the absolute threshold on the max-magnitude delta.
	DefaultTolerance = 1e-8
)
