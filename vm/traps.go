package vm

// Trap vectors, one per service routine.
const (
	trapGETC  uint16 = 0x20
	trapOUT   uint16 = 0x21
	trapPUTS  uint16 = 0x22
	trapIN    uint16 = 0x23
	trapPUTSP uint16 = 0x24
	trapHALT  uint16 = 0x25
)

// trapTable maps the low 8 bits of a TRAP instruction to its routine: the
// same table-driven dispatch idiom as opTable, one level down (opcode ->
// trap vector).
var trapTable = map[uint16]func(m *Machine){
	trapGETC:  trapGetc,
	trapOUT:   trapOut,
	trapPUTS:  trapPuts,
	trapIN:    trapInChar,
	trapPUTSP: trapPutsp,
	trapHALT:  trapHalt,
}

// dispatchTrap runs the routine for vector, or does nothing for an unknown
// vector: a silent no-op that preserves every register but R7, which TRAP
// entry already set.
func dispatchTrap(m *Machine, vector uint16) {
	if routine, ok := trapTable[vector]; ok {
		routine(m)
	}
}

// trapGetc reads one byte from the console (blocking), stores it unsigned
// in R0, and does not echo or touch COND.
func trapGetc(m *Machine) {
	b, err := m.Console.ReadByte()
	if err != nil {
		b = 0 // EOF / I/O failure: implementation-defined, reads as zero.
	}
	m.Reg[0] = uint16(b)
}

// trapOut writes the low 8 bits of R0 and flushes.
func trapOut(m *Machine) {
	_ = m.Console.WriteByte(byte(m.Reg[0]))
	_ = m.Console.Flush()
}

// trapPuts writes one ASCII byte per word starting at R0 until a
// zero-valued word, then flushes.
func trapPuts(m *Machine) {
	for addr := m.Reg[0]; ; addr++ {
		word := m.memRead(addr)
		if word == 0 {
			break
		}
		_ = m.Console.WriteByte(byte(word & 0xFF))
	}
	_ = m.Console.Flush()
}

// trapInChar prompts, reads one byte (blocking), echoes it, stores it in
// R0, and flushes.
func trapInChar(m *Machine) {
	const prompt = "Enter a character: "
	for i := 0; i < len(prompt); i++ {
		_ = m.Console.WriteByte(prompt[i])
	}
	b, err := m.Console.ReadByte()
	if err != nil {
		b = 0
	}
	_ = m.Console.WriteByte(b)
	m.Reg[0] = uint16(b)
	_ = m.Console.Flush()
}

// trapPutsp writes two packed ASCII bytes per word (low byte first, then
// high byte), starting at R0. The string ends at the first word whose low
// byte is zero; that word contributes nothing to the output, even if its
// high byte is non-zero. A non-zero high byte paired with a non-zero low
// byte is written; a zero high byte is suppressed.
func trapPutsp(m *Machine) {
	for addr := m.Reg[0]; ; addr++ {
		word := m.memRead(addr)
		lo := byte(word & 0xFF)
		if lo == 0 {
			break
		}
		_ = m.Console.WriteByte(lo)
		if hi := byte(word >> 8); hi != 0 {
			_ = m.Console.WriteByte(hi)
		}
	}
	_ = m.Console.Flush()
}

// trapHalt writes "HALT\n", flushes, and stops the run loop.
func trapHalt(m *Machine) {
	const msg = "HALT\n"
	for i := 0; i < len(msg); i++ {
		_ = m.Console.WriteByte(msg[i])
	}
	_ = m.Console.Flush()
	if m.haltNotifier != nil {
		m.haltNotifier.Halted()
	}
	m.errcode = errProgramFinished
}
