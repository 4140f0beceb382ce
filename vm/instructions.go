package vm

// Sixteen opcode handlers, one per entry of opTable. Each handler receives
// the already-fetched instruction word; PC has already been incremented
// past it, so every PC-relative form adds its offset to the address of the
// *next* instruction.

func init() {
	opTable[OpBR] = execBR
	opTable[OpADD] = execADD
	opTable[OpLD] = execLD
	opTable[OpST] = execST
	opTable[OpJSR] = execJSR
	opTable[OpAND] = execAND
	opTable[OpLDR] = execLDR
	opTable[OpSTR] = execSTR
	opTable[OpRTI] = execIllegal
	opTable[OpNOT] = execNOT
	opTable[OpLDI] = execLDI
	opTable[OpSTI] = execSTI
	opTable[OpJMP] = execJMP
	opTable[OpRES] = execIllegal
	opTable[OpLEA] = execLEA
	opTable[OpTRAP] = execTRAP
}

func execIllegal(m *Machine, _ uint16) {
	m.errcode = ErrIllegalInstruction
}

func execADD(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 == 1 {
		imm5 := signExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] + imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] + m.Reg[sr2]
	}
	m.updateFlags(dr)
}

func execAND(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 == 1 {
		imm5 := signExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] & imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] & m.Reg[sr2]
	}
	m.updateFlags(dr)
}

func execNOT(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	sr := (instr >> 6) & 0x7
	m.Reg[dr] = ^m.Reg[sr]
	m.updateFlags(dr)
}

func execBR(m *Machine, instr uint16) {
	nzp := (instr >> 9) & 0x7
	if nzp&m.Cond != 0 {
		m.PC += signExtend(instr&0x1FF, 9)
	}
}

func execJMP(m *Machine, instr uint16) {
	baseR := (instr >> 6) & 0x7
	m.PC = m.Reg[baseR]
}

func execJSR(m *Machine, instr uint16) {
	m.Reg[7] = m.PC
	if (instr>>11)&0x1 == 1 {
		m.PC += signExtend(instr&0x7FF, 11)
	} else {
		baseR := (instr >> 6) & 0x7
		m.PC = m.Reg[baseR]
	}
}

func execLD(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	addr := m.PC + signExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.memRead(addr)
	m.updateFlags(dr)
}

func execLDI(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	addr := m.PC + signExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.memRead(m.memRead(addr))
	m.updateFlags(dr)
}

func execLDR(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	offset := signExtend(instr&0x3F, 6)
	m.Reg[dr] = m.memRead(m.Reg[baseR] + offset)
	m.updateFlags(dr)
}

func execLEA(m *Machine, instr uint16) {
	dr := (instr >> 9) & 0x7
	m.Reg[dr] = m.PC + signExtend(instr&0x1FF, 9)
	m.updateFlags(dr)
}

func execST(m *Machine, instr uint16) {
	sr := (instr >> 9) & 0x7
	addr := m.PC + signExtend(instr&0x1FF, 9)
	m.memWrite(addr, m.Reg[sr])
}

func execSTI(m *Machine, instr uint16) {
	sr := (instr >> 9) & 0x7
	addr := m.PC + signExtend(instr&0x1FF, 9)
	m.memWrite(m.memRead(addr), m.Reg[sr])
}

func execSTR(m *Machine, instr uint16) {
	sr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	offset := signExtend(instr&0x3F, 6)
	m.memWrite(m.Reg[baseR]+offset, m.Reg[sr])
}

func execTRAP(m *Machine, instr uint16) {
	m.Reg[7] = m.PC
	dispatchTrap(m, instr&0xFF)
}
