package press

import (
	"strings"
	"testing"
	"time"
)

func TestResult_PercentChange(t *testing.T) {
	tests := []struct {
		name     string
		in, out  int64
		expected float64
	}{
		{"halved", 1000, 500, -50},
		{"grown", 1000, 1500, 50},
		{"unchanged", 1000, 1000, 0},
		{"zero input", 0, 500, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := &Result{InputSize: test.in, OutputSize: test.out}
			if got := r.PercentChange(); got != test.expected {
				t.Errorf("PercentChange() = %v, want %v", got, test.expected)
			}
		})
	}
}

func TestResult_Summary(t *testing.T) {
	r := &Result{
		InputSize:        10000,
		OutputSize:       5000,
		Duration:         1234 * time.Millisecond,
		CompiledTailwind: true,
		MinifiedHTML:     true,
	}

	s := r.Summary()
	for _, want := range []string{"Tailwind CSS compiled", "HTML minified", "-50.0%", "10,000 bytes", "5,000 bytes"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() = %q, missing %q", s, want)
		}
	}
}

func TestResult_SummaryNoActions(t *testing.T) {
	r := &Result{InputSize: 100, OutputSize: 100}
	if s := r.Summary(); !strings.HasPrefix(s, "Processed") {
		t.Errorf("Summary() = %q, expected Processed prefix", s)
	}
}
