package vm

import (
	"github.com/bradford-hamilton/glitchbeat/internal/logging"
	"github.com/bradford-hamilton/glitchbeat/internal/melody"
)

// VM is the per-sample interpreter: it walks a melody's token stream once
// per Compute call, driving a RingStack, and returns the low byte of the
// final stack top as one 8-bit PCM sample.
//
// The stack's state persists across samples within a render session
// (residual values from sample t are visible to sample t+1); Reset must
// be called whenever the melody is re-tokenized or the render position
// is rewound.
type VM struct {
	stack  *RingStack
	tokens []melody.Token
	log    *logging.Logger
}

// New returns a VM with a freshly reset stack and no tokens loaded.
func New(log *logging.Logger) *VM {
	if log == nil {
		log = logging.Default
	}
	return &VM{stack: NewRingStack(), log: log}
}

// LoadTokens swaps in a new token list by reference, the publish-new-
// reference pattern spec.md calls for on edit. It does not reset the
// stack; callers edit-resetting the VM call Reset separately so the two
// concerns (new program, fresh stack) stay independent.
func (v *VM) LoadTokens(tokens []melody.Token) {
	v.tokens = tokens
}

// Reset zeroes the ring stack. Call after an edit or a rewind.
func (v *VM) Reset() {
	v.stack.Reset()
}

// StackSnapshot returns a value copy of the ring stack's 256 slots, for
// read-only visualizer access. Since it is a copy, the visualizer cannot
// observe or cause races with the VM's own mutation of the live stack.
func (v *VM) StackSnapshot() [256]uint32 {
	return v.stack.Snapshot()
}

// Compute evaluates the token stream once for sample index t and returns
// the low byte of the resulting stack top. The VM does not rotate after
// reading: stack state persists into the next Compute call.
func (v *VM) Compute(t uint32) byte {
	for _, tok := range v.tokens {
		switch tok.Kind {
		case melody.HexToken:
			v.stack.Push(tok.Value)
		case melody.OpcodeToken:
			v.exec(tok.Opcode, t)
		}
	}
	return byte(v.stack.Top() & 0xFF)
}

// exec applies a single opcode to the stack. Unknown opcodes are logged
// once and otherwise ignored: runtime evaluation errors never escape the
// VM, they are absorbed so audio stays continuous.
func (v *VM) exec(opcode byte, t uint32) {
	switch opcode {
	case '.':
		// NOP. Tokenize already drops '.' from the stream; this case is
		// here only because '.' remains a documented, harmless opcode.
	case 'a':
		opT(v.stack, t)
	case 'b':
		opPut(v.stack)
	case 'c':
		opDrop(v.stack)
	case 'd':
		opMul(v.stack)
	case 'e':
		opDiv(v.stack)
	case 'f':
		opAdd(v.stack)
	case 'g':
		opSub(v.stack)
	case 'h':
		opMod(v.stack)
	case 'j':
		opLShift(v.stack)
	case 'k':
		opRShift(v.stack)
	case 'l':
		opAnd(v.stack)
	case 'm':
		opOr(v.stack)
	case 'n':
		opXor(v.stack)
	case 'o':
		opNot(v.stack)
	case 'p':
		opDup(v.stack)
	case 'q':
		opPick(v.stack)
	case 'r':
		opSwap(v.stack)
	case 's':
		opLt(v.stack)
	case 't':
		opGt(v.stack)
	case 'u':
		opEq(v.stack)
	default:
		v.log.Warn("opcode %q not implemented, ignored", string(opcode))
	}
}
