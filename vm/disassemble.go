package vm

import "fmt"

// regName renders register index r (0..7) as "Rr".
func regName(r uint16) string {
	return fmt.Sprintf("R%d", r)
}

// nzpMnemonic renders the 3-bit BR condition mask as a suffix: "n", "z",
// "p", or any combination ("nzp" for an unconditional branch).
func nzpMnemonic(nzp uint16) string {
	s := ""
	if nzp&FlagNeg != 0 {
		s += "n"
	}
	if nzp&FlagZro != 0 {
		s += "z"
	}
	if nzp&FlagPos != 0 {
		s += "p"
	}
	return s
}

// disassembleOne renders a single instruction word as LC-3 assembly text.
// addr is the address the word was fetched from, used to resolve
// PC-relative offsets into absolute targets.
func disassembleOne(addr, instr uint16) string {
	op := decodeOpcode(instr)
	nextPC := addr + 1

	switch op {
	case OpADD, OpAND:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		if (instr>>5)&0x1 == 1 {
			imm5 := int16(signExtend(instr&0x1F, 5))
			return fmt.Sprintf("%s %s, %s, #%d", op, regName(dr), regName(sr1), imm5)
		}
		sr2 := instr & 0x7
		return fmt.Sprintf("%s %s, %s, %s", op, regName(dr), regName(sr1), regName(sr2))
	case OpNOT:
		dr := (instr >> 9) & 0x7
		sr := (instr >> 6) & 0x7
		return fmt.Sprintf("NOT %s, %s", regName(dr), regName(sr))
	case OpBR:
		nzp := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("BR%s #x%04X", nzpMnemonic(nzp), target)
	case OpJMP:
		baseR := (instr >> 6) & 0x7
		if baseR == 7 {
			return "RET"
		}
		return fmt.Sprintf("JMP %s", regName(baseR))
	case OpJSR:
		if (instr>>11)&0x1 == 1 {
			target := nextPC + signExtend(instr&0x7FF, 11)
			return fmt.Sprintf("JSR #x%04X", target)
		}
		baseR := (instr >> 6) & 0x7
		return fmt.Sprintf("JSRR %s", regName(baseR))
	case OpLD:
		dr := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("LD %s, #x%04X", regName(dr), target)
	case OpLDI:
		dr := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("LDI %s, #x%04X", regName(dr), target)
	case OpLDR:
		dr := (instr >> 9) & 0x7
		baseR := (instr >> 6) & 0x7
		offset := int16(signExtend(instr&0x3F, 6))
		return fmt.Sprintf("LDR %s, %s, #%d", regName(dr), regName(baseR), offset)
	case OpLEA:
		dr := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("LEA %s, #x%04X", regName(dr), target)
	case OpST:
		sr := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("ST %s, #x%04X", regName(sr), target)
	case OpSTI:
		sr := (instr >> 9) & 0x7
		target := nextPC + signExtend(instr&0x1FF, 9)
		return fmt.Sprintf("STI %s, #x%04X", regName(sr), target)
	case OpSTR:
		sr := (instr >> 9) & 0x7
		baseR := (instr >> 6) & 0x7
		offset := int16(signExtend(instr&0x3F, 6))
		return fmt.Sprintf("STR %s, %s, #%d", regName(sr), regName(baseR), offset)
	case OpTRAP:
		return fmt.Sprintf("TRAP x%02X", instr&0xFF)
	default:
		return fmt.Sprintf(".WORD x%04X", instr)
	}
}

// Disassemble renders every word in [lo, hi) as one line of LC-3 assembly
// text, prefixed with its address. It is a pure text formatter over
// already-loaded memory: it does not step the machine or accept input.
func Disassemble(mem *Memory, lo, hi uint16) []string {
	lines := make([]string, 0, int(hi)-int(lo))
	for addr := uint32(lo); addr < uint32(hi) && addr < memSize; addr++ {
		instr := mem.words[uint16(addr)]
		lines = append(lines, fmt.Sprintf("x%04X: %s", addr, disassembleOne(uint16(addr), instr)))
	}
	return lines
}
