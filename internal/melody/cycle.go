package melody

import (
	"strings"

	"github.com/pkg/errors"
)

// keyOrder is the cycling alphabet glitched.py walks on PageUp/PageDown:
// hex digits, then opcodes, then NOP.
const keyOrder = "0123456789ABCDEFabcdefghjklmnopqrstu."

// CycleChar steps the character at (row, col) forward (dir > 0) or
// backward (dir < 0) through keyOrder, wrapping at either end. A
// character not present in keyOrder is treated as if it were '.'.
// This supplements spec.md's editChar with the original editor's
// page-up/page-down opcode cycling.
func (m *Melody) CycleChar(row, col, dir int) error {
	if row < 0 || row >= len(m.Lines) {
		return errors.Errorf("melody: row %d out of range (have %d lines)", row, len(m.Lines))
	}
	line := m.Lines[row]
	if col < 0 || col >= len(line) {
		return errors.Errorf("melody: column %d out of range (line has %d characters)", col, len(line))
	}

	idx := strings.IndexByte(keyOrder, line[col])
	if idx < 0 {
		idx = len(keyOrder) - 1 // '.'
	}
	n := len(keyOrder)
	next := ((idx+dir)%n + n) % n

	return m.EditChar(row, col, keyOrder[next])
}
