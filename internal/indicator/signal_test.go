package indicator

import "testing"

func f(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		t     Thresholds
		want  Signal
	}{
		{"below green", f(3.5), Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalGreen},
		{"at green boundary", f(4.0), Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalGreen},
		{"between green and yellow", f(5.0), Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalYellow},
		{"at yellow boundary", f(6.0), Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalYellow},
		{"above yellow", f(6.1), Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalRed},
		{"negative value", f(-1.2), Thresholds{GreenMax: f(0.0), YellowMax: f(2.0)}, SignalGreen},
		{"no value", nil, Thresholds{GreenMax: f(4.0), YellowMax: f(6.0)}, SignalUnknown},
		{"no value no thresholds", nil, Thresholds{}, SignalUnknown},
		// Absent yellow_max means anything above green_max stays yellow.
		{"yellow_max absent above green", f(1000.0), Thresholds{GreenMax: f(4.0)}, SignalYellow},
		{"yellow_max absent below green", f(3.0), Thresholds{GreenMax: f(4.0)}, SignalGreen},
		// Absent green_max means everything classifies green.
		{"green_max absent", f(1e9), Thresholds{}, SignalGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value, tt.t); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
