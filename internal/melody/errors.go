package melody

import "github.com/pkg/errors"

// ErrLineTooLong is returned when a program line exceeds the 16-character
// invariant; load-time errors like this escape the core per the error
// handling contract (runtime evaluation errors never do).
var ErrLineTooLong = errors.New("melody: program line exceeds 16 characters")

// MaxLines is the number of program lines a melody may hold, excluding
// the title field.
const MaxLines = 16

// MaxLineLength is the maximum character count of a single program line.
const MaxLineLength = 16
