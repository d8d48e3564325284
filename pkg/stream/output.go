package stream

import (
	"bufio"
	"fmt"
	"io"
)

// Sink consumes per-step (t, vin, vout) triples in time order.
type Sink interface {
	Write(t, vin, vout float64) error
}

// Writer is the reference textual Sink: whitespace-separated "t vin vout",
// one triple per line, in time order.
type Writer struct {
	bw *bufio.Writer
}

var _ Sink = (*Writer)(nil)

// NewWriter wraps w in a buffered Sink. Callers must call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) Write(t, vin, vout float64) error {
	_, err := fmt.Fprintf(w.bw, "%g %g %g\n", t, vin, vout)
	return err
}

// Flush flushes any buffered output.
func (w *Writer) Flush() error { return w.bw.Flush() }

// RecordingSink accumulates triples in memory, for programmatic callers
// and tests that want the (t, vin, vout) series directly rather than a
// serialized form.
type RecordingSink struct {
	Time, Vin, Vout []float64
}

var _ Sink = (*RecordingSink)(nil)

func (s *RecordingSink) Write(t, vin, vout float64) error {
	s.Time = append(s.Time, t)
	s.Vin = append(s.Vin, vin)
	s.Vout = append(s.Vout, vout)
	return nil
}
