package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMachine() *Machine {
	return NewMachine(&fakeConsole{})
}

func TestExecADDRegisterMode(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 5
	m.Reg[2] = 7
	// ADD R0, R1, R2
	execADD(m, 0x1042)
	assert.Equal(t, uint16(12), m.Reg[0])
	assert.Equal(t, FlagPos, m.Cond)
}

func TestExecADDImmediateMode(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 5
	// ADD R0, R1, #-1 (imm5 = 0x1F)
	execADD(m, 0x107F)
	assert.Equal(t, uint16(4), m.Reg[0])
	assert.Equal(t, FlagPos, m.Cond)
}

func TestExecADDSetsZeroFlag(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 1
	// ADD R0, R1, #-1
	execADD(m, 0x107F)
	assert.Equal(t, uint16(0), m.Reg[0])
	assert.Equal(t, FlagZro, m.Cond)
}

func TestExecANDImmediateMode(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 0xFF
	// AND R0, R1, #0x0F
	execAND(m, 0x506F)
	assert.Equal(t, uint16(0x0F), m.Reg[0])
}

func TestExecNOT(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 0x00FF
	// NOT R0, R1
	execNOT(m, 0x907F)
	assert.Equal(t, uint16(0xFF00), m.Reg[0])
	assert.Equal(t, FlagNeg, m.Cond)
}

func TestExecBRTaken(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	m.Cond = FlagZro
	// BRz #2
	execBR(m, 0x0402)
	assert.Equal(t, uint16(0x3002), m.PC)
}

func TestExecBRNotTaken(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	m.Cond = FlagPos
	// BRz #2
	execBR(m, 0x0402)
	assert.Equal(t, uint16(0x3000), m.PC)
}

func TestExecJMPAndRET(t *testing.T) {
	m := newTestMachine()
	m.Reg[7] = 0x4000
	// JMP R7
	execJMP(m, 0xC1C0)
	assert.Equal(t, uint16(0x4000), m.PC)
}

func TestExecJSRRelative(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	// JSR #1
	execJSR(m, 0x4801)
	assert.Equal(t, uint16(0x3000), m.Reg[7])
	assert.Equal(t, uint16(0x3001), m.PC)
}

func TestExecJSRRRegisterMode(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	m.Reg[2] = 0x5000
	// JSRR R2
	execJSR(m, 0x4080)
	assert.Equal(t, uint16(0x3000), m.Reg[7])
	assert.Equal(t, uint16(0x5000), m.PC)
}

func TestExecLDAndLDI(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	m.memWrite(0x3001, 0xBEEF)
	m.memWrite(0xBEEF, 0x1234)

	// LD R0, #1
	execLD(m, 0x2001)
	assert.Equal(t, uint16(0xBEEF), m.Reg[0])

	// LDI R1, #1
	execLDI(m, 0x2201)
	assert.Equal(t, uint16(0x1234), m.Reg[1])
}

func TestExecLDRAndSTR(t *testing.T) {
	m := newTestMachine()
	m.Reg[1] = 0x3000
	// STR R2, R1, #3
	m.Reg[2] = 0x55
	execSTR(m, 0x7443)
	assert.Equal(t, uint16(0x55), m.memRead(0x3003))

	// LDR R3, R1, #3
	execLDR(m, 0x6643)
	assert.Equal(t, uint16(0x55), m.Reg[3])
}

func TestExecLEA(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	// LEA R0, #5
	execLEA(m, 0xE005)
	assert.Equal(t, uint16(0x3005), m.Reg[0])
}

func TestExecSTAndSTI(t *testing.T) {
	m := newTestMachine()
	m.PC = 0x3000
	m.Reg[0] = 0x42
	// ST R0, #1
	execST(m, 0x3001)
	assert.Equal(t, uint16(0x42), m.memRead(0x3001))

	m.memWrite(0x3002, 0x4000)
	m.Reg[1] = 0x99
	// STI R1, #2
	execSTI(m, 0x3202)
	assert.Equal(t, uint16(0x99), m.memRead(0x4000))
}

func TestExecIllegalSetsErrcode(t *testing.T) {
	m := newTestMachine()
	execIllegal(m, 0x8000)
	assert.ErrorIs(t, m.errcode, ErrIllegalInstruction)
}
