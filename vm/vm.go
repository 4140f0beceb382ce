// Package vm implements the LC-3 instruction-set interpreter: registers,
// memory-mapped I/O, the object-image loader, the sixteen opcode handlers,
// the trap dispatcher, and the fetch-decode-execute loop.
package vm

const (
	memSize = 1 << 16 // 65536 words of 16-bit memory

	// Memory-mapped keyboard status/data registers.
	mrKBSR uint16 = 0xFE00
	mrKBDR uint16 = 0xFE02

	// pcStart is the conventional LC-3 user-code load address.
	pcStart uint16 = 0x3000
)

// Condition flags. Exactly one is set in Machine.Cond at any time.
const (
	FlagPos uint16 = 1 << 0
	FlagZro uint16 = 1 << 1
	FlagNeg uint16 = 1 << 2
)

// Console is the narrow I/O surface the core needs from its environment.
// Implementations live outside this package, in the console package.
type Console interface {
	// PollReady reports whether a byte is currently available, without
	// blocking.
	PollReady() bool
	// ReadByte blocks until a byte is available and returns it.
	ReadByte() (byte, error)
	// WriteByte writes one byte to output.
	WriteByte(b byte) error
	// Flush forces any buffered output to be written.
	Flush() error
}

// HaltNotifier is told when the HALT trap fires, decoupling the run loop
// from whatever the caller wants to do about it (print a message, set an
// exit code, tear down terminal state).
type HaltNotifier interface {
	Halted()
}

// Machine owns the entire LC-3 architectural state: the register file, the
// flat memory array, and the console the core talks to. There is no
// package-level mutable state — every instruction handler operates on a
// *Machine passed to it as its first argument.
type Machine struct {
	Reg  [8]uint16 // R0-R7
	PC   uint16
	Cond uint16

	Mem Memory

	Console Console

	// haltNotifier, if set, is told when the HALT trap fires.
	haltNotifier HaltNotifier

	// errcode is set by a handler to end the run loop; nil means "keep
	// running".
	errcode error
}

// NewMachine returns a Machine with PC and COND at their architectural
// reset values and zeroed registers and memory.
func NewMachine(console Console) *Machine {
	return &Machine{
		PC:      pcStart,
		Cond:    FlagZro,
		Console: console,
	}
}

// updateFlags sets COND from the sign of Reg[r]. Handlers that write a
// result register call it; GETC, IN and the R7 write of JSR/TRAP do not.
func (m *Machine) updateFlags(r uint16) {
	switch {
	case m.Reg[r] == 0:
		m.Cond = FlagZro
	case m.Reg[r]>>15 != 0:
		m.Cond = FlagNeg
	default:
		m.Cond = FlagPos
	}
}
