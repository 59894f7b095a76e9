package lazyframe

import (
	"fmt"
	"io"
)

// meter renders a carriage-return progress line, advancing once per
// processed window. A nil writer disables all output.
type meter struct {
	w     io.Writer
	total int
	done  int
}

func newMeter(w io.Writer, total int) *meter {
	return &meter{w: w, total: total}
}

// step records one completed window and redraws the meter.
func (m *meter) step() {
	if m.w == nil {
		return
	}
	m.done++
	pct := 100 * float64(m.done) / float64(m.total)
	fmt.Fprintf(m.w, "\rprocessing chunks: %d/%d (%.1f%%)", m.done, m.total, pct)
}

// finish terminates the meter line once all windows are processed.
func (m *meter) finish() {
	if m.w == nil || m.total == 0 {
		return
	}
	fmt.Fprintln(m.w)
}
