package render

import (
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// WavSink bounces rendered frames to a WAV file via faiface/beep/wav, the
// encode-side sibling of the mp3 decode package the teacher used for its
// one fixed sound effect (see DESIGN.md). It shares BeepSink's channel-
// handoff backpressure design but drives beep/wav.Encode instead of the
// live speaker.
type WavSink struct {
	frames chan Frame
	cur    Frame
	pos    int
	have   bool
	closed bool
}

// NewWavSink starts encoding to w in a background goroutine and returns a
// sink ready to receive frames. errc receives the Encode result (nil on a
// clean Close) exactly once. w must support Seek because wav.Encode
// back-patches the RIFF and data chunk sizes after the stream ends.
func NewWavSink(w io.WriteSeeker) (sink *WavSink, errc <-chan error) {
	s := &WavSink{frames: make(chan Frame)}
	ch := make(chan error, 1)
	format := beep.Format{
		SampleRate:  sinkSampleRate,
		NumChannels: 1,
		Precision:   1,
	}
	go func() {
		ch <- wav.Encode(w, s, format)
	}()
	return s, ch
}

// PushFrame blocks until the encoder has consumed the previously queued
// frame.
func (s *WavSink) PushFrame(f Frame) {
	if s.closed {
		return
	}
	s.frames <- f
}

// Close signals end-of-stream to the encoder; the next Stream call
// returns ok=false and wav.Encode finalizes the file.
func (s *WavSink) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.frames)
}

// Stream implements beep.Streamer, pulling one 8-bit mono sample per
// output frame (duplicated across beep's stereo float64 layout; the WAV
// format above declares NumChannels: 1, so beep/wav only persists the
// left channel).
func (s *WavSink) Stream(samples [][2]float64) (n int, ok bool) {
	for n = 0; n < len(samples); n++ {
		if !s.have {
			f, open := <-s.frames
			if !open {
				return n, n > 0
			}
			s.cur = f
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

// Err implements beep.Streamer.
func (s *WavSink) Err() error {
	return nil
}
