package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolLoadStore(t *testing.T) {
	b := NewBool(false)
	assert.False(t, b.Load())
	b.Store(true)
	assert.True(t, b.Load())
}

func TestBoolCAS(t *testing.T) {
	b := NewBool(false)
	assert.True(t, b.CAS(false, true))
	assert.True(t, b.Load())
	assert.False(t, b.CAS(false, true), "CAS must fail when old does not match current value")
}

func TestBoolSwap(t *testing.T) {
	b := NewBool(false)
	prev := b.Swap(true)
	assert.False(t, prev)
	assert.True(t, b.Load())
}
