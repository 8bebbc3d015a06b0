// Package tax estimates US federal income tax, FICA, and take-home pay.
package tax

import "math"

// Filing statuses.
const (
	StatusSingle        = "single"
	StatusMarriedJoint  = "married_joint"
	StatusHeadHousehold = "head_of_household"
)

// Bracket is one progressive tax band. Upper is the top of the band;
// the final band uses math.Inf(1).
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

type yearTable struct {
	brackets   map[string][]Bracket
	deduction  map[string]float64
	ssWageBase float64
	// Additional Medicare threshold by filing status.
	medicareThreshold map[string]float64
}

const (
	ssRate                 = 0.062
	medicareRate           = 0.0145
	additionalMedicareRate = 0.009
)

func brackets(cuts []float64) []Bracket {
	rates := []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}
	bands := make([]Bracket, len(rates))
	lower := 0.0
	for i, rate := range rates {
		upper := math.Inf(1)
		if i < len(cuts) {
			upper = cuts[i]
		}
		bands[i] = Bracket{Lower: lower, Upper: upper, Rate: rate}
		lower = upper
	}
	return bands
}

// One canonical table per tax year. The source app carried several
// drifted copies of these; they are deduplicated here.
var yearTables = map[int]yearTable{
	2024: {
		brackets: map[string][]Bracket{
			StatusSingle:        brackets([]float64{11600, 47150, 100525, 191950, 243725, 609350}),
			StatusMarriedJoint:  brackets([]float64{23200, 94300, 201050, 383900, 487450, 731200}),
			StatusHeadHousehold: brackets([]float64{16550, 63100, 100500, 191950, 243700, 609350}),
		},
		deduction: map[string]float64{
			StatusSingle:        14600,
			StatusMarriedJoint:  29200,
			StatusHeadHousehold: 21900,
		},
		ssWageBase: 168600,
		medicareThreshold: map[string]float64{
			StatusSingle:        200000,
			StatusMarriedJoint:  250000,
			StatusHeadHousehold: 200000,
		},
	},
	2025: {
		brackets: map[string][]Bracket{
			StatusSingle:        brackets([]float64{11925, 48475, 103350, 197300, 250525, 626350}),
			StatusMarriedJoint:  brackets([]float64{23850, 96950, 206700, 394600, 501050, 751600}),
			StatusHeadHousehold: brackets([]float64{17000, 64850, 103350, 197300, 250525, 626350}),
		},
		deduction: map[string]float64{
			StatusSingle:        15000,
			StatusMarriedJoint:  30000,
			StatusHeadHousehold: 22500,
		},
		ssWageBase: 176100,
		medicareThreshold: map[string]float64{
			StatusSingle:        200000,
			StatusMarriedJoint:  250000,
			StatusHeadHousehold: 200000,
		},
	},
}

// Years returns the supported tax years.
func Years() []int {
	return []int{2024, 2025}
}

// Statuses returns the supported filing statuses.
func Statuses() []string {
	return []string{StatusSingle, StatusMarriedJoint, StatusHeadHousehold}
}
