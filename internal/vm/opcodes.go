package vm

// Each opcode function takes the RingStack and leaves its result on top,
// mirroring the teacher's one-function-per-instruction style
// (internal/chip8/instructions.go's _0xNNNN family), generalized from
// 16-bit CHIP-8 opcodes to this language's single-character opcodes.
//
// Binary ops read a (top) and b (At(1)), zero a's slot, and Rotate(2) so
// that the following Push advances back into b's slot and overwrites it
// with the result. Net effect: the two operand slots collapse into one
// result slot on top, and a's old slot, now the oldest in the ring, holds
// zero.

func popOperands(s *RingStack) (a, b uint32) {
	a = s.Top()
	b = s.At(1)
	s.SetTop(0)
	s.Rotate(2)
	return a, b
}

func opT(s *RingStack, t uint32) {
	s.Push(t)
}

// opPut implements PUT: k = a & 0xFF; write b into slot at(k+1); then
// rotate(+1), which drops a from the top and leaves b as the new top.
// This spec adopts the majority revision's behavior: PUT rotates after
// the write (see DESIGN.md's open-question ledger).
func opPut(s *RingStack) {
	a := s.Top()
	b := s.At(1)
	k := a & 0xFF
	s.SetAt(int(k)+1, b)
	s.Rotate(1)
}

func opDrop(s *RingStack) {
	s.Rotate(1)
}

func opMul(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b * a)
}

func opDiv(s *RingStack) {
	a, b := popOperands(s)
	if a == 0 {
		s.Push(0)
		return
	}
	s.Push(b / a)
}

func opAdd(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b + a)
}

func opSub(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b - a)
}

func opMod(s *RingStack) {
	a, b := popOperands(s)
	if a == 0 {
		s.Push(0)
		return
	}
	s.Push(b % a)
}

func opLShift(s *RingStack) {
	a, b := popOperands(s)
	if a < 32 {
		s.Push(b << a)
	} else {
		s.Push(0)
	}
}

func opRShift(s *RingStack) {
	a, b := popOperands(s)
	if a < 32 {
		s.Push(b >> a)
	} else {
		s.Push(0)
	}
}

func opAnd(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b & a)
}

func opOr(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b | a)
}

func opXor(s *RingStack) {
	a, b := popOperands(s)
	s.Push(b ^ a)
}

func opNot(s *RingStack) {
	s.SetTop(^s.Top())
}

func opDup(s *RingStack) {
	s.Push(s.Top())
}

// opPick implements PICK: a := Top() is the slot PICK itself occupies, so
// depth k = a mod 256 is counted from the slot below it (offset 1), the
// stack's real top once a is conceptually consumed. offset = (k+1) mod
// 256: 0 PICK reads offset 1, the slot directly below a, matching DUP's
// behavior of duplicating the current top; 0xFF PICK (k=255) wraps all
// the way back around to offset 0, a's own slot, leaving the value
// unchanged ("0xFF PICK leaves 0xFF" per spec.md §4.4). Top is overwritten
// in place, no rotation.
func opPick(s *RingStack) {
	a := s.Top()
	k := int(a % 256)
	offset := (k + 1) % 256
	s.SetTop(s.At(offset))
}

func opSwap(s *RingStack) {
	a := s.Top()
	b := s.At(1)
	s.SetTop(b)
	s.SetAt(1, a)
}

func opLt(s *RingStack) {
	a, b := popOperands(s)
	if b < a {
		s.Push(0xFFFFFFFF)
	} else {
		s.Push(0)
	}
}

func opGt(s *RingStack) {
	a, b := popOperands(s)
	if b > a {
		s.Push(0xFFFFFFFF)
	} else {
		s.Push(0)
	}
}

func opEq(s *RingStack) {
	a, b := popOperands(s)
	if b == a {
		s.Push(0xFFFFFFFF)
	} else {
		s.Push(0)
	}
}
