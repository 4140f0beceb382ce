package vm

import "errors"

var (
	// errProgramFinished marks a normal exit from the fetch-execute loop (HALT).
	errProgramFinished = errors.New("program halted")

	// ErrIllegalInstruction is returned when RTI or an opcode reserved by
	// LC-3 user mode is fetched.
	ErrIllegalInstruction = errors.New("illegal instruction")

	// ErrLoadTooShort is returned when an image stream yields fewer than
	// 2 bytes, so no origin address can be read.
	ErrLoadTooShort = errors.New("image too short to contain an origin")

	// ErrImageOverflow is returned when an image's payload would run past
	// the end of the 65536-word address space.
	ErrImageOverflow = errors.New("image payload overflows address space")

	// errIO marks a best-effort console I/O failure during a trap.
	errIO = errors.New("console i/o error")
)
