package vm

import "fmt"

// Run executes instructions starting at PC until a trap halts the machine,
// an illegal opcode is fetched, or a run-time panic occurs. halt, if
// non-nil, is told exactly once when the HALT trap fires; it is not called
// on any other form of termination.
//
// Run never returns errProgramFinished — that sentinel only marks a normal
// HALT internally and is translated to a nil error here.
func (m *Machine) Run(halt HaltNotifier) (err error) {
	m.haltNotifier = halt
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vm: run-time fault: %v", r)
		}
	}()

	for {
		instr := m.memRead(m.PC)
		m.PC++

		op := decodeOpcode(instr)
		handler := opTable[op]
		handler(m, instr)

		if m.errcode != nil {
			if m.errcode == errProgramFinished {
				return nil
			}
			return m.errcode
		}
	}
}
