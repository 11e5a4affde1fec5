package moveslice

import (
	"testing"

	. "github.com/corvidchess/corvid/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestPushPopBack(t *testing.T) {
	l := NewMoveSlice(4)
	l.PushBack(NewMove(SqE2, SqE4))
	l.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, NewMove(SqD2, SqD4), l.PopBack())
	assert.Equal(t, 1, l.Len())
}

func TestPushFrontPopFront(t *testing.T) {
	l := NewMoveSlice(4)
	l.PushBack(NewMove(SqE2, SqE4))
	l.PushFront(NewMove(SqD2, SqD4))
	assert.Equal(t, NewMove(SqD2, SqD4), l.Front())
	assert.Equal(t, NewMove(SqD2, SqD4), l.PopFront())
	assert.Equal(t, NewMove(SqE2, SqE4), l.Front())
}

func TestFilter(t *testing.T) {
	l := NewMoveSlice(4)
	l.PushBack(NewMove(SqE2, SqE4))
	l.PushBack(NewMove(SqD2, SqD4))
	l.Filter(func(m Move) bool { return m.From() == SqE2 })
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, SqE2, l.At(0).From())
}

func TestContainsAndEquals(t *testing.T) {
	l := NewMoveSlice(4)
	l.PushBack(NewMove(SqE2, SqE4))
	assert.True(t, l.Contains(NewMove(SqE2, SqE4)))
	assert.False(t, l.Contains(NewMove(SqD2, SqD4)))

	clone := l.Clone()
	assert.True(t, l.Equals(clone))
}

func TestStringUci(t *testing.T) {
	l := NewMoveSlice(4)
	l.PushBack(NewMove(SqE2, SqE4))
	l.PushBack(NewPromotionMove(SqA7, SqA8, Queen))
	assert.Equal(t, "e2e4 a7a8q", l.StringUci())
}
