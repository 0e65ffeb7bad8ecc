package press

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Result summarizes one pipeline run. It is advisory reporting only and
// never feeds back into the transform.
type Result struct {
	RunID  string
	Source string
	Dest   string

	InputSize  int64
	OutputSize int64
	Duration   time.Duration

	CompiledTailwind bool
	MinifiedHTML     bool
}

// PercentChange returns the output size relative to the input size as a
// signed percentage. Zero-byte inputs report zero change.
func (r *Result) PercentChange() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return (float64(r.OutputSize-r.InputSize) / float64(r.InputSize)) * 100
}

// fmtSizeDual renders a byte count in both human and exact form,
// e.g. "12 kB (12,345 bytes)".
func fmtSizeDual(n int64) string {
	return fmt.Sprintf("%s (%s bytes)", humanize.Bytes(uint64(n)), humanize.Comma(n))
}

// Summary renders the one-line run report.
func (r *Result) Summary() string {
	var actions []string
	if r.CompiledTailwind {
		actions = append(actions, "Tailwind CSS compiled")
	}
	if r.MinifiedHTML {
		actions = append(actions, "HTML minified")
	}
	action := "Processed"
	if len(actions) > 0 {
		action = strings.Join(actions, ", ")
	}

	return fmt.Sprintf("%s: %s -> %s (%+.1f%%) in %s",
		action,
		fmtSizeDual(r.InputSize),
		fmtSizeDual(r.OutputSize),
		r.PercentChange(),
		r.Duration.Round(time.Millisecond))
}
