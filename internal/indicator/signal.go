package indicator

import "math"

// Signal is the discrete health classification of one indicator value.
type Signal string

const (
	SignalGreen   Signal = "green"
	SignalYellow  Signal = "yellow"
	SignalRed     Signal = "red"
	SignalUnknown Signal = "unknown"
)

// Thresholds holds the per-indicator classification bounds. Nil pointers
// mean the bound is absent and treated as +Inf: with no yellow_max a value
// above green_max stays yellow and never reaches red.
type Thresholds struct {
	GreenMax  *float64 `yaml:"green_max"`
	YellowMax *float64 `yaml:"yellow_max"`
}

// Classify maps a value to a Signal. Pure function of (value, thresholds):
// unknown when no value was obtainable, green when value <= green_max,
// yellow when value <= yellow_max, red otherwise.
func Classify(value *float64, t Thresholds) Signal {
	if value == nil {
		return SignalUnknown
	}

	greenMax := math.Inf(1)
	if t.GreenMax != nil {
		greenMax = *t.GreenMax
	}
	yellowMax := math.Inf(1)
	if t.YellowMax != nil {
		yellowMax = *t.YellowMax
	}

	switch {
	case *value <= greenMax:
		return SignalGreen
	case *value <= yellowMax:
		return SignalYellow
	default:
		return SignalRed
	}
}
