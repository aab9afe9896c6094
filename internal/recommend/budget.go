package recommend

import "strings"

// Envelope is the per-request spending frame. Min is computed for
// response parity with the older policy but nothing downstream reads it.
type Envelope struct {
	Min  int
	Soft int
	Hard int
}

// BudgetPolicy derives the spending envelope from party size, budget
// tier, and mood. The source shipped two incompatible formulas; both are
// kept as named policies and selected per deployment.
type BudgetPolicy interface {
	Range(peoples int, tier, mood string) Envelope
}

// PolicyByName maps the BUDGET_POLICY setting to a policy. The
// multiplicative formula is canonical.
func PolicyByName(name string) BudgetPolicy {
	if strings.ToLower(name) == "additive" {
		return AdditivePolicy{}
	}
	return NewMultiplicativeMoodPolicy()
}

// --------------------------------------------------
// MULTIPLICATIVE (canonical)
// --------------------------------------------------

// MultiplicativeMoodPolicy: exact per-party base table, tier multiplier,
// then a mood factor. hard = floor(final), soft = floor(final * 0.7).
type MultiplicativeMoodPolicy struct {
	MoodFactors map[string]float64
}

func NewMultiplicativeMoodPolicy() MultiplicativeMoodPolicy {
	return MultiplicativeMoodPolicy{
		MoodFactors: map[string]float64{
			"spicy_craving":  1.3,
			"cheesy_mood":    1.3,
			"sweet_craving":  1.1,
			"healthy_choice": 0.9,
			"heavy_meal":     1.5,
			"light_meal":     0.8,
		},
	}
}

func (p MultiplicativeMoodPolicy) Range(peoples int, tier, mood string) Envelope {
	var base int
	switch peoples {
	case 1:
		base = 600
	case 2:
		base = 1200
	case 3:
		base = 1800
	case 4:
		base = 2500
	case 5:
		base = 3200
	default:
		base = peoples * 600
	}

	mult := 1.0
	switch strings.ToLower(tier) {
	case "tight":
		mult = 1.0
	case "medium":
		mult = 1.4
	case "comfortable":
		mult = 1.8
	}

	factor, ok := p.MoodFactors[mood]
	if !ok {
		factor = 1.0
	}

	final := float64(base) * mult * factor

	hard := int(final)
	soft := int(final * 0.7)

	return Envelope{Min: soft, Soft: soft, Hard: hard}
}

// --------------------------------------------------
// ADDITIVE (alternate)
// --------------------------------------------------

// AdditivePolicy: per-party tier bases plus fixed offsets. Reproduced
// verbatim from the older formula, including the missing 4-person row —
// a party of 4 takes the linear arm.
type AdditivePolicy struct{}

func (AdditivePolicy) Range(peoples int, tier, mood string) Envelope {
	var tight, medium, comfort int
	switch peoples {
	case 1:
		tight, medium, comfort = 500, 800, 1200
	case 2:
		tight, medium, comfort = 1200, 1800, 2500
	case 3:
		tight, medium, comfort = 1500, 2500, 3500
	case 5:
		tight, medium, comfort = 2500, 3500, 5000
	default:
		tight, medium, comfort = peoples*500, peoples*800, peoples*1200
	}

	switch strings.ToLower(tier) {
	case "tight":
		return Envelope{Min: tight, Soft: tight + 300, Hard: tight + 600}
	case "comfortable":
		return Envelope{Min: comfort, Soft: comfort + 600, Hard: comfort + 1200}
	default:
		// unknown tiers behave as medium
		return Envelope{Min: medium, Soft: medium + 400, Hard: medium + 800}
	}
}
