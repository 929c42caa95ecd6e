package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingStack_StartsAllZero(t *testing.T) {
	s := NewRingStack()
	assert.Equal(t, uint32(0), s.Top())
	for i := 0; i < 256; i++ {
		assert.Equal(t, uint32(0), s.At(i))
	}
}

func TestRingStack_PushAdvancesTopAndPreservesHistory(t *testing.T) {
	s := NewRingStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(t, uint32(3), s.Top())
	assert.Equal(t, uint32(2), s.At(1))
	assert.Equal(t, uint32(1), s.At(2))
	assert.Equal(t, uint32(0), s.At(3))
}

func TestRingStack_DropResurfacesBuriedSlot(t *testing.T) {
	s := NewRingStack()
	s.Push(1)
	s.Push(2)
	s.Rotate(1) // DROP

	assert.Equal(t, uint32(1), s.Top())
}

func TestRingStack_AtWrapsModulo256(t *testing.T) {
	s := NewRingStack()
	assert.Equal(t, s.At(0), s.At(256))
	assert.Equal(t, s.At(3), s.At(259))
}

func TestRingStack_ResetIsIdempotentAndZeroesEverything(t *testing.T) {
	s := NewRingStack()
	s.Push(42)
	s.Reset()
	s.Reset()

	assert.Equal(t, uint32(0), s.Top())
	assert.Equal(t, uint32(0), s.At(1))
}

func TestRingStack_NeverChangesSize(t *testing.T) {
	s := NewRingStack()
	for i := 0; i < 1000; i++ {
		s.Push(uint32(i))
	}
	snap := s.Snapshot()
	assert.Len(t, snap, 256)
}
