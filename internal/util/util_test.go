package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 0, Abs(0))
}

func TestAbs16(t *testing.T) {
	assert.Equal(t, int16(5), Abs16(5))
	assert.Equal(t, int16(5), Abs16(-5))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 3, Min(3, 3))
}

func TestNps(t *testing.T) {
	nps := Nps(1_000_000, time.Second)
	assert.InDelta(t, 1_000_000, nps, 10)
}

func TestNpsZeroDurationDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Nps(1000, 0)
	})
}

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
	assert.False(t, IsDigit(' '))
}

func TestMemStatReportsFields(t *testing.T) {
	s := MemStat()
	assert.Contains(t, s, "Alloc:")
	assert.Contains(t, s, "NumGC:")
}
