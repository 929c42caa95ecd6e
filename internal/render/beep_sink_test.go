package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests build a BeepSink directly from its zero-value-plus-channel
// form rather than through NewBeepSink, which calls speaker.Init and
// requires a real audio backend; the sample-conversion and channel
// handoff logic under test don't depend on that call.

func TestBeepSink_StreamCentersUnsignedByteOnZero(t *testing.T) {
	s := &BeepSink{frames: make(chan Frame)}
	var f Frame
	f[0], f[1], f[2] = 0, 128, 255

	go s.PushFrame(f)

	samples := make([][2]float64, 3)
	n, ok := s.Stream(samples)

	require.True(t, ok)
	require.Equal(t, 3, n)
	assert.InDelta(t, -1.0, samples[0][0], 1e-9)
	assert.InDelta(t, 0.0, samples[1][0], 1e-9)
	assert.InDelta(t, 127.0/128.0, samples[2][0], 1e-9)
}

func TestBeepSink_StreamDuplicatesMonoToStereo(t *testing.T) {
	s := &BeepSink{frames: make(chan Frame)}
	var f Frame
	f[0] = 200

	go s.PushFrame(f)

	samples := make([][2]float64, 1)
	_, ok := s.Stream(samples)

	require.True(t, ok)
	assert.Equal(t, samples[0][0], samples[0][1])
}

func TestBeepSink_StreamPullsANewFrameOncePreviousIsDrained(t *testing.T) {
	s := &BeepSink{frames: make(chan Frame)}
	var first, second Frame
	first[FrameSize-1] = 1
	second[0] = 2

	go func() {
		s.PushFrame(first)
		s.PushFrame(second)
	}()

	samples := make([][2]float64, FrameSize+1)
	n, ok := s.Stream(samples)

	require.True(t, ok)
	require.Equal(t, FrameSize+1, n)
	assert.InDelta(t, (1.0-128)/128, samples[FrameSize-1][0], 1e-9)
	assert.InDelta(t, (2.0-128)/128, samples[FrameSize][0], 1e-9)
}

func TestBeepSink_ErrIsAlwaysNil(t *testing.T) {
	s := &BeepSink{frames: make(chan Frame)}
	assert.NoError(t, s.Err())
}
