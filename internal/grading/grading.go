// Package grading defines the operator-entered condition grades and the decision
// tree that turns a hardware record plus grades into a disposition recommendation.
package grading

import (
	"strconv"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
)

// Grade is an operator-entered condition grade.
type Grade string

// Condition grades, best to worst.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Charger answers.
const (
	ChargerYes = "Y"
	ChargerNo  = "N"
)

// Grades holds the operator-entered condition of one unit.
// Values are always populated and validated by the grading wizard.
type Grades struct {
	Screen  Grade
	Chassis Grade
	Charger string
}

// Recommendation is the disposition label driving the resale or repair workflow.
type Recommendation string

// The closed set of dispositions. The strings are the exact labels persisted to
// the ledger.
const (
	PartsRepair        Recommendation = "PARTS/REPAIR"
	HighValue          Recommendation = "HIGH VALUE (Gaming/Creator)"
	StandardResale     Recommendation = "Standard Resale"
	BadBatteryDiscount Recommendation = "Bad Battery (Discount)"
)

// Classify applies the disposition decision tree. Rules are evaluated in order
// and the first match wins:
//
//  1. failed SMART, or a C grade on screen or chassis, condemns the unit to parts,
//  2. any discrete GPU makes it high value,
//  3. a recent CPU with a healthy battery sells as standard resale,
//  4. a battery under 60% sells at a discount,
//  5. everything else sells as standard resale.
//
// An undetermined battery ("N/A") counts as 0%, so a unit that reaches rule 4
// without a readable battery is treated as a bad battery.
func Classify(hw hwscan.Record, g Grades) Recommendation {
	battery, err := strconv.Atoi(hw.BatteryPct)
	if err != nil {
		battery = 0
	}

	if hw.StorageHealth == hwscan.HealthFailed || g.Screen == GradeC || g.Chassis == GradeC {
		return PartsRepair
	}
	if hw.GPU != hwscan.NoGPU {
		return HighValue
	}
	if hw.CPUGeneration >= 8 && battery > 65 {
		return StandardResale
	}
	if battery < 60 {
		return BadBatteryDiscount
	}
	return StandardResale
}
