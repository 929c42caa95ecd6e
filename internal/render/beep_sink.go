package render

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// sinkSampleRate matches the 8000 Hz mono contract from spec.md §6; it is
// passed straight through to speaker.Init, mirroring the teacher's
// ManageAudio, which read format.SampleRate off the decoded stream and
// handed it to speaker.Init unchanged.
const sinkSampleRate = beep.SampleRate(SampleRate)

// BeepSink plays rendered frames live through faiface/beep/speaker. It
// implements beep.Streamer so the speaker's own pull-based mixer drives
// consumption: PushFrame hands a frame over an unbuffered channel, which
// only unblocks once Stream has fully drained the previous frame — this
// is the backpressure boundary spec.md §4.5 requires, for free, from the
// channel's synchronous handoff.
type BeepSink struct {
	frames chan Frame
	cur    Frame
	pos    int
	have   bool
}

// NewBeepSink initializes the speaker at the 8000 Hz mono contract and
// returns a sink ready to be passed to speaker.Play.
func NewBeepSink() (*BeepSink, error) {
	if err := speaker.Init(sinkSampleRate, sinkSampleRate.N(frameDuration)); err != nil {
		return nil, err
	}
	s := &BeepSink{frames: make(chan Frame)}
	speaker.Play(s)
	return s, nil
}

// PushFrame blocks until Stream has consumed the previously queued frame.
func (s *BeepSink) PushFrame(f Frame) {
	s.frames <- f
}

// Stream implements beep.Streamer. Mono 8-bit unsigned samples are
// widened to beep's [-1,1] float64 stereo frame format by centering on
// 128 and duplicating to both channels.
func (s *BeepSink) Stream(samples [][2]float64) (n int, ok bool) {
	for n = 0; n < len(samples); n++ {
		if !s.have {
			s.cur = <-s.frames
			s.pos = 0
			s.have = true
		}
		v := (float64(s.cur[s.pos]) - 128) / 128
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
		if s.pos >= FrameSize {
			s.have = false
		}
	}
	return n, true
}

// Err implements beep.Streamer. BeepSink never fails on its own.
func (s *BeepSink) Err() error {
	return nil
}
