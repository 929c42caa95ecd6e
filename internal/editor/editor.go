// Package editor implements the terminal side of the editor boundary
// spec.md defines for the out-of-scope interactive collaborator: load a
// melody, edit a character at (row, column), set a muted-line set,
// re-tokenize, and read/write the canonical text form. It is a thin
// command-line stand-in for the tile-and-keybinding UI spec.md places out
// of scope, grounded on the teacher's cooperative run loop
// (cmd/run.go: `go vm.ManageAudio(); go vm.Run(); <-vm.ShutdownC`).
package editor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bradford-hamilton/glitchbeat/internal/logging"
	"github.com/bradford-hamilton/glitchbeat/internal/melody"
	"github.com/bradford-hamilton/glitchbeat/internal/render"
	"github.com/bradford-hamilton/glitchbeat/internal/vm"
)

// Resetter is the subset of *vm.VM the editor needs to reset on edit or
// rewind, kept as an interface so tests can substitute a fake.
type Resetter interface {
	LoadTokens(tokens []melody.Token)
	Reset()
}

// Editor holds the melody, its VM, and a cursor position, and drives the
// text command loop a terminal session uses in place of the tile editor.
type Editor struct {
	Melody *melody.Melody
	vm     Resetter
	render *render.Renderer
	row    int
	col    int
	log    *logging.Logger

	// Shutdown is closed when the session should exit; the caller's
	// render loop selects on it the same way the teacher's VM.Run
	// selects on vm.Shutdown.
	Shutdown chan struct{}
}

// New builds an Editor over an already-loaded melody, wiring the initial
// token load into vm.
func New(m *melody.Melody, v Resetter, r *render.Renderer, log *logging.Logger) *Editor {
	if log == nil {
		log = logging.Default
	}
	v.LoadTokens(m.Tokens)
	return &Editor{Melody: m, vm: v, render: r, log: log, Shutdown: make(chan struct{})}
}

// Run reads newline-delimited commands from r until EOF or a "quit"
// command, applying each to the melody and VM. It never returns an error
// for a malformed command line — it logs and continues, keeping the
// session alive, matching the teacher's posture of absorbing per-cycle
// errors rather than tearing down the run loop.
func (e *Editor) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if e.dispatch(line) {
			close(e.Shutdown)
			return
		}
	}
	close(e.Shutdown)
}

// dispatch applies one command line and reports whether the session
// should quit.
func (e *Editor) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "up":
		if e.row > 0 {
			e.row--
		}
	case "down":
		if e.row < len(e.Melody.Lines)-1 {
			e.row++
		}
	case "left":
		if e.col > 0 {
			e.col--
		}
	case "right":
		if e.col < melody.MaxLineLength-1 {
			e.col++
		}
	case "goto":
		e.gotoCursor(args)
	case "set":
		e.setChar(args)
	case "cycle":
		e.cycleChar(args)
	case "mute":
		e.toggleMute(args, true)
	case "unmute":
		e.toggleMute(args, false)
	case "rewind":
		e.render.Rewind()
		e.vm.Reset()
	case "quit":
		e.save()
		return true
	default:
		e.log.Warn("unknown editor command: %q", cmd)
	}
	return false
}

func (e *Editor) gotoCursor(args []string) {
	if len(args) != 2 {
		e.log.Warn("goto requires row and column")
		return
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		e.log.Warn("goto requires integer row and column")
		return
	}
	e.row, e.col = row, col
}

func (e *Editor) setChar(args []string) {
	if len(args) != 1 || len(args[0]) != 1 {
		e.log.Warn("set requires exactly one character")
		return
	}
	if err := e.Melody.EditChar(e.row, e.col, args[0][0]); err != nil {
		e.log.Warn("edit failed: %v", err)
		return
	}
	e.vm.LoadTokens(e.Melody.Tokens)
	e.vm.Reset()
}

func (e *Editor) cycleChar(args []string) {
	dir := 1
	if len(args) == 1 && args[0] == "-" {
		dir = -1
	}
	if err := e.Melody.CycleChar(e.row, e.col, dir); err != nil {
		e.log.Warn("cycle failed: %v", err)
		return
	}
	e.vm.LoadTokens(e.Melody.Tokens)
	e.vm.Reset()
}

func (e *Editor) toggleMute(args []string, mute bool) {
	if len(args) != 1 {
		e.log.Warn("mute/unmute requires a line number")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		e.log.Warn("mute/unmute requires an integer line number")
		return
	}
	set := make(map[int]struct{}, len(e.Melody.MutedLines))
	for k := range e.Melody.MutedLines {
		set[k] = struct{}{}
	}
	if mute {
		set[n] = struct{}{}
	} else {
		delete(set, n)
	}
	e.Melody.SetMutedLines(set)
	e.vm.LoadTokens(e.Melody.Tokens)
	e.vm.Reset()
}

func (e *Editor) save() {
	e.log.Info("now playing: %s", e.Melody.Serialize())
}

// ensure vm.VM satisfies Resetter.
var _ Resetter = (*vm.VM)(nil)

// SaveErr wraps an I/O failure while persisting the melody's canonical
// text form, escaping the core per spec.md §7.
func SaveErr(path string, err error) error {
	return errors.Wrapf(err, "editor: failed to save melody to %s", path)
}

// FormatUnreadable reports an unreadable-file condition for the CLI
// boundary's exit-code-1 contract.
func FormatUnreadable(path string, err error) string {
	return fmt.Sprintf("cannot read %s: %v", path, err)
}
