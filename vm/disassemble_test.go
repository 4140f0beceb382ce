package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleOneADDImmediate(t *testing.T) {
	// ADD R0, R1, #-1
	assert.Equal(t, "ADD R0, R1, #-1", disassembleOne(0x3000, 0x107F))
}

func TestDisassembleOneBR(t *testing.T) {
	// BRz #x3002 (PC-relative: next PC 0x3001 + offset 1)
	assert.Equal(t, "BRz #x3002", disassembleOne(0x3000, 0x0401))
}

func TestDisassembleOneTrap(t *testing.T) {
	assert.Equal(t, "TRAP x25", disassembleOne(0x3000, 0xF025))
}

func TestDisassembleRange(t *testing.T) {
	var mem Memory
	mem.words[0x3000] = 0xF021
	mem.words[0x3001] = 0xF025

	lines := Disassemble(&mem, 0x3000, 0x3002)
	assert.Equal(t, []string{
		"x3000: TRAP x21",
		"x3001: TRAP x25",
	}, lines)
}
