// Package melody holds the textual melody model and its tokenizer: a
// melody is a title plus up to 16 program lines of at most 16 characters
// each, and a derived token stream the VM evaluates once per sample.
package melody

import (
	"strings"

	"github.com/pkg/errors"
)

// Melody is the textual program that defines a bytebeat voice.
type Melody struct {
	Title      string
	Lines      []string
	Tokens     []Token
	MutedLines map[int]struct{}
}

// Parse splits text on '!': the first field is the title, the remainder
// are program lines. A trailing newline, if present, is stripped before
// splitting. Parse rejects any program line longer than 16 characters.
func Parse(text string) (*Melody, error) {
	text = strings.TrimRight(text, "\n")
	fields := strings.Split(text, "!")

	m := &Melody{
		Title:      fields[0],
		Lines:      append([]string(nil), fields[1:]...),
		MutedLines: make(map[int]struct{}),
	}

	for i, line := range m.Lines {
		if len(line) > MaxLineLength {
			return nil, errors.Wrapf(ErrLineTooLong, "line %d has %d characters", i, len(line))
		}
	}

	m.retokenize()
	return m, nil
}

// Serialize is the inverse of Parse: trailing '.' are stripped per line,
// lines are joined with '!', trailing empty line groups are stripped, and
// a leading '!' is emitted iff the title is empty.
func (m *Melody) Serialize() string {
	lines := make([]string, len(m.Lines))
	for i, line := range m.Lines {
		lines[i] = strings.TrimRight(line, ".")
	}

	parts := append([]string{m.Title}, lines...)
	joined := strings.Join(parts, "!")
	joined = strings.TrimRight(joined, "!")

	if m.Title == "" {
		return "!" + strings.TrimPrefix(joined, "!")
	}
	return joined
}

// Expand pads every line to exactly 16 characters with '.' and ensures at
// least 16 program lines exist, for editor convenience before interactive
// editing begins.
func (m *Melody) Expand() {
	for i := range m.Lines {
		m.Lines[i] = padLine(m.Lines[i])
	}
	for len(m.Lines) < MaxLines {
		m.Lines = append(m.Lines, strings.Repeat(".", MaxLineLength))
	}
}

func padLine(line string) string {
	if len(line) >= MaxLineLength {
		return line[:MaxLineLength]
	}
	return line + strings.Repeat(".", MaxLineLength-len(line))
}

// EditChar replaces the character at (row, col) in the program lines
// (title excluded), preserving line length, then re-tokenizes. Callers
// must reset the VM after this returns, per the editor boundary contract.
func (m *Melody) EditChar(row, col int, ch byte) error {
	if row < 0 || row >= len(m.Lines) {
		return errors.Errorf("melody: row %d out of range (have %d lines)", row, len(m.Lines))
	}
	line := m.Lines[row]
	if col < 0 || col >= len(line) {
		return errors.Errorf("melody: column %d out of range (line has %d characters)", col, len(line))
	}

	b := []byte(line)
	b[col] = ch
	m.Lines[row] = string(b)
	m.retokenize()
	return nil
}

// SetMutedLines replaces the set of program-line indices excluded from
// tokenization and re-tokenizes. Callers must reset the VM afterward.
func (m *Melody) SetMutedLines(set map[int]struct{}) {
	if set == nil {
		set = make(map[int]struct{})
	}
	m.MutedLines = set
	m.retokenize()
}

func (m *Melody) retokenize() {
	m.Tokens = Tokenize(m.Lines, m.MutedLines)
}
