package render

import (
	"io"

	"github.com/bradford-hamilton/glitchbeat/internal/logging"
)

// StdoutSink writes each frame's raw bytes to an io.Writer, one byte per
// sample, with no framing — the shape `render [FORMULA]` needs, grounded
// on original_source's glitter.py (`stdout.write(chr(m._compute_(i)))`).
// A single synchronous Write call per frame is itself the backpressure
// boundary: the renderer cannot start the next frame until this one
// returns.
type StdoutSink struct {
	w   io.Writer
	log *logging.Logger
}

// NewStdoutSink returns a sink that writes to w.
func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{w: w, log: logging.Default}
}

// PushFrame writes f's bytes to the underlying writer, blocking until the
// write completes. A write failure is logged rather than propagated: the
// FrameSink interface has no error return, matching WavSink and BeepSink,
// which report their own failures out of band (an error channel, Err()).
func (s *StdoutSink) PushFrame(f Frame) {
	if _, err := s.w.Write(f[:]); err != nil {
		s.log.Warn("stdout sink write failed: %v", err)
	}
}
