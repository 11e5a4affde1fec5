package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestBitboardPushPopSquare(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())

	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardLsbMsb(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.True(t, b.MoreThanOne())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqB2.Bb() | SqC3.Bb()
	first := b.PopLsb()
	assert.Equal(t, SqB2, first)
	assert.Equal(t, 1, b.PopCount())
}

func TestGetAttacksBbRookOpenFile(t *testing.T) {
	attacks := GetAttacksBb(Rook, SqA1, BbZero)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqB2))
}

func TestGetAttacksBbBishopBlocked(t *testing.T) {
	occupied := SqC3.Bb()
	attacks := GetAttacksBb(Bishop, SqA1, occupied)
	assert.True(t, attacks.Has(SqB2))
	assert.True(t, attacks.Has(SqC3))
	assert.False(t, attacks.Has(SqD4))
}

func TestGetPawnAttacks(t *testing.T) {
	attacks := GetPawnAttacks(White, SqE4)
	assert.True(t, attacks.Has(SqD5))
	assert.True(t, attacks.Has(SqF5))
	assert.Equal(t, 2, attacks.PopCount())
}

func TestBetweenAndLine(t *testing.T) {
	between := Between(SqA1, SqA4)
	assert.True(t, between.Has(SqA2))
	assert.True(t, between.Has(SqA3))
	assert.False(t, between.Has(SqA1))
	assert.False(t, between.Has(SqA4))

	line := Line(SqA1, SqH8)
	assert.True(t, line.Has(SqD4))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
}
