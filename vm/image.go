package vm

import (
	"encoding/binary"
	"errors"
	"io"
)

// LoadImage reads an LC-3 object image from src and stores it into mem: a
// 2-byte big-endian origin followed by big-endian words read until EOF.
// binary.BigEndian already parses these into host order, so no further
// byte-swap is needed. It returns the origin so callers (tests,
// disassemblers) can locate the loaded region.
func LoadImage(mem *Memory, src io.Reader) (origin uint16, err error) {
	var originBuf [2]byte
	if _, err := io.ReadFull(src, originBuf[:]); err != nil {
		return 0, ErrLoadTooShort
	}
	origin = binary.BigEndian.Uint16(originBuf[:])

	addr := uint32(origin)
	var wordBuf [2]byte
	for {
		_, err := io.ReadFull(src, wordBuf[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return origin, err
		}

		if addr >= memSize {
			return origin, ErrImageOverflow
		}

		mem.words[uint16(addr)] = binary.BigEndian.Uint16(wordBuf[:])
		addr++
	}

	return origin, nil
}
