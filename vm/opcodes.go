package vm

// Opcode is the 4-bit instruction class in bits 15..12 of an LC-3
// instruction word: a small named integer with a String() method backed by
// a name table, sized for LC-3's 16-entry opcode space.
type Opcode uint16

const (
	OpBR   Opcode = 0x0
	OpADD  Opcode = 0x1
	OpLD   Opcode = 0x2
	OpST   Opcode = 0x3
	OpJSR  Opcode = 0x4
	OpAND  Opcode = 0x5
	OpLDR  Opcode = 0x6
	OpSTR  Opcode = 0x7
	OpRTI  Opcode = 0x8
	OpNOT  Opcode = 0x9
	OpLDI  Opcode = 0xA
	OpSTI  Opcode = 0xB
	OpJMP  Opcode = 0xC
	OpRES  Opcode = 0xD
	OpLEA  Opcode = 0xE
	OpTRAP Opcode = 0xF
)

var opcodeNames = map[Opcode]string{
	OpBR:   "BR",
	OpADD:  "ADD",
	OpLD:   "LD",
	OpST:   "ST",
	OpJSR:  "JSR",
	OpAND:  "AND",
	OpLDR:  "LDR",
	OpSTR:  "STR",
	OpRTI:  "RTI",
	OpNOT:  "NOT",
	OpLDI:  "LDI",
	OpSTI:  "STI",
	OpJMP:  "JMP",
	OpRES:  "RES",
	OpLEA:  "LEA",
	OpTRAP: "TRAP",
}

// String renders an opcode's mnemonic, or "?unknown?" — there are none,
// since every 4-bit value is named above, but the fallback mirrors the
// teacher's Bytecode.String() defensive default.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "?unknown?"
}

// decodeOpcode extracts the 4-bit opcode from bits 15..12 of instr.
func decodeOpcode(instr uint16) Opcode {
	return Opcode(instr >> 12)
}

// opTable is table-driven dispatch: one handler function per opcode,
// indexed by Opcode, easier to trace than a growing switch. Populated in
// instructions.go's init.
var opTable [16]func(m *Machine, instr uint16)
