package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignExtendPositive(t *testing.T) {
	assert.Equal(t, uint16(0x000F), signExtend(0x000F, 5))
	assert.Equal(t, uint16(0x0000), signExtend(0x0000, 9))
}

func TestSignExtendNegative(t *testing.T) {
	// 5-bit -1 (0x1F) widens to 16-bit -1 (0xFFFF).
	assert.Equal(t, uint16(0xFFFF), signExtend(0x1F, 5))
	// 9-bit -256 (0x100) widens to 16-bit -256 (0xFF00).
	assert.Equal(t, uint16(0xFF00), signExtend(0x100, 9))
	// 6-bit -1 (0x3F) widens to 16-bit -1.
	assert.Equal(t, uint16(0xFFFF), signExtend(0x3F, 6))
}

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x0201), swap16(0x0102))
	assert.Equal(t, uint16(0x0000), swap16(0x0000))

	// Swapping twice is the identity.
	for _, x := range []uint16{0x1234, 0xFFFF, 0x8000, 0x0001} {
		assert.Equal(t, x, swap16(swap16(x)))
	}
}
