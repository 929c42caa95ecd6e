// Package render drives the VM across a stream of sample indices,
// packages the output into fixed-size frames, and hands each frame to a
// backpressure-authoritative sink.
package render

import (
	"time"

	"github.com/bradford-hamilton/glitchbeat/internal/logging"
)

// FrameSize is the number of samples per rendered frame (B in spec.md).
const FrameSize = 256

// SampleRate is the fixed output sample rate in Hz.
const SampleRate = 8000

// frameDuration is the wall-clock budget for producing one frame at
// SampleRate without falling behind real-time playback.
const frameDuration = time.Second * FrameSize / SampleRate

// Frame is one contiguous block of FrameSize unsigned 8-bit PCM samples.
type Frame [FrameSize]byte

// Sampler computes one 8-bit sample for a given sample index. *vm.VM
// satisfies this via its Compute method.
type Sampler interface {
	Compute(t uint32) byte
}

// FrameSink consumes rendered frames. PushFrame must block until the
// sink is ready to accept a new frame — the renderer never enqueues a
// frame while a previous one is still awaiting consumption.
type FrameSink interface {
	PushFrame(f Frame)
}

// Renderer owns the monotonic sample counter and drives a Sampler across
// it, frame by frame, into a FrameSink.
type Renderer struct {
	sampler Sampler
	sink    FrameSink
	log     *logging.Logger
	i       uint32
}

// New returns a Renderer at sample index 0.
func New(sampler Sampler, sink FrameSink, log *logging.Logger) *Renderer {
	if log == nil {
		log = logging.Default
	}
	return &Renderer{sampler: sampler, sink: sink, log: log}
}

// Rewind resets the sample counter to 0. Callers are responsible for
// resetting the VM separately (spec.md §4.5.5: rewind resets both, but
// ownership of each is distinct so an edit, which resets only the VM,
// can reuse the same Renderer).
func (r *Renderer) Rewind() {
	r.i = 0
}

// Position returns the current sample index, for diagnostics.
func (r *Renderer) Position() uint32 {
	return r.i
}

// renderFrame computes one frame starting at the current sample index,
// advances the counter, and returns the frame along with whether this
// frame took longer than its real-time budget to produce. It does not
// push the frame to the sink — callers that need the backpressure
// boundary call Run instead.
func (r *Renderer) renderFrame() (Frame, bool) {
	start := time.Now()
	var f Frame
	for j := 0; j < FrameSize; j++ {
		f[j] = r.sampler.Compute(r.i)
		r.i++
	}
	dropped := time.Since(start) > frameDuration
	return f, dropped
}

// Run drives frames into the sink forever, or until stop is closed. Each
// PushFrame call blocks at the sink's backpressure boundary; frame_dropped
// is logged but never causes samples to be skipped.
func (r *Renderer) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		r.pushOne()
	}
}

// RunN drives exactly n frames into the sink and returns, for bounded
// outputs like a WAV bounce where the caller, not the sink, decides when
// the stream ends.
func (r *Renderer) RunN(n int) {
	for i := 0; i < n; i++ {
		r.pushOne()
	}
}

func (r *Renderer) pushOne() {
	f, dropped := r.renderFrame()
	if dropped {
		r.log.Warn("frame_dropped: render took longer than %s", frameDuration)
	}
	r.sink.PushFrame(f)
}
