package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradford-hamilton/glitchbeat/internal/melody"
	"github.com/bradford-hamilton/glitchbeat/internal/render"
)

// fakeResetter records every call the editor makes to it, so dispatch
// tests can assert on VM interaction without wiring a real *vm.VM.
type fakeResetter struct {
	loaded     [][]melody.Token
	resetCount int
}

func (f *fakeResetter) LoadTokens(tokens []melody.Token) {
	f.loaded = append(f.loaded, tokens)
}

func (f *fakeResetter) Reset() {
	f.resetCount++
}

type discardSampler struct{}

func (discardSampler) Compute(uint32) byte { return 0 }

type discardSink struct{}

func (discardSink) PushFrame(render.Frame) {}

func newTestEditor(t *testing.T, text string) (*Editor, *fakeResetter) {
	t.Helper()
	m, err := melody.Parse(text)
	require.NoError(t, err)

	fake := &fakeResetter{}
	r := render.New(discardSampler{}, discardSink{}, nil)
	return New(m, fake, r, nil), fake
}

func TestNew_LoadsInitialTokensOnce(t *testing.T) {
	_, fake := newTestEditor(t, "t!FF!a")
	assert.Len(t, fake.loaded, 1)
}

func TestDispatch_SetEditsCharAndReloadsVM(t *testing.T) {
	e, fake := newTestEditor(t, "t!FF")

	quit := e.dispatch("set A")

	assert.False(t, quit)
	assert.Equal(t, "AF", e.Melody.Lines[0])
	assert.Len(t, fake.loaded, 2)
	assert.Equal(t, 1, fake.resetCount)
}

func TestDispatch_SetRejectsMultiCharArgument(t *testing.T) {
	e, fake := newTestEditor(t, "t!FF")

	e.dispatch("set AB")

	assert.Equal(t, "FF", e.Melody.Lines[0])
	assert.Len(t, fake.loaded, 1) // only the initial load from New
}

func TestDispatch_CycleAdvancesThroughKeyOrder(t *testing.T) {
	e, _ := newTestEditor(t, "t!0F")

	e.dispatch("cycle")

	assert.Equal(t, "1F", e.Melody.Lines[0])
}

func TestDispatch_CycleBackwardsWithDashArgument(t *testing.T) {
	e, _ := newTestEditor(t, "t!1F")

	e.dispatch("cycle -")

	assert.Equal(t, "0F", e.Melody.Lines[0])
}

func TestDispatch_MuteAndUnmuteToggleMutedLines(t *testing.T) {
	e, fake := newTestEditor(t, "t!FF!a")

	e.dispatch("mute 0")
	assert.Contains(t, e.Melody.MutedLines, 0)
	assert.Len(t, fake.loaded, 2)

	e.dispatch("unmute 0")
	assert.NotContains(t, e.Melody.MutedLines, 0)
	assert.Len(t, fake.loaded, 3)
}

func TestDispatch_GotoMovesCursor(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")

	e.dispatch("goto 3 4")

	assert.Equal(t, 3, e.row)
	assert.Equal(t, 4, e.col)
}

func TestDispatch_GotoRejectsNonIntegerArgs(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")
	e.row, e.col = 1, 1

	e.dispatch("goto x y")

	assert.Equal(t, 1, e.row)
	assert.Equal(t, 1, e.col)
}

func TestDispatch_DirectionalMovementStopsAtBounds(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF!a")

	e.dispatch("up")
	assert.Equal(t, 0, e.row)

	e.dispatch("down")
	assert.Equal(t, 1, e.row)
	e.dispatch("down")
	assert.Equal(t, 1, e.row, "down must not exceed the last line")

	e.dispatch("left")
	assert.Equal(t, 0, e.col)
}

func TestDispatch_RewindResetsRendererAndVM(t *testing.T) {
	e, fake := newTestEditor(t, "t!a")
	e.render.RunN(2)
	require.NotEqual(t, uint32(0), e.render.Position())

	e.dispatch("rewind")

	assert.Equal(t, uint32(0), e.render.Position())
	assert.Equal(t, 1, fake.resetCount)
}

func TestDispatch_QuitReturnsTrue(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")

	assert.True(t, e.dispatch("quit"))
}

func TestDispatch_UnknownCommandDoesNotQuit(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")

	assert.False(t, e.dispatch("frobnicate"))
}

func TestRun_StopsAndClosesShutdownOnQuit(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")

	e.Run(strings.NewReader("up\nquit\n"))

	select {
	case <-e.Shutdown:
	default:
		t.Fatal("expected Shutdown to be closed after quit")
	}
}

func TestRun_ClosesShutdownOnEOFWithoutQuit(t *testing.T) {
	e, _ := newTestEditor(t, "t!FF")

	e.Run(strings.NewReader("up\ndown\n"))

	select {
	case <-e.Shutdown:
	default:
		t.Fatal("expected Shutdown to be closed once the reader is exhausted")
	}
}
