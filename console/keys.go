package console

import (
	"bufio"
	"os"

	"github.com/eiannone/keyboard"
)

// Keys is a vm.Console that reads one keypress at a time via a third-party
// keyboard library rather than raw-mode stdin. It has no background reader:
// ReadByte blocks directly on GetSingleKey, and PollReady always reports
// false, since the library exposes no non-blocking peek — a keyboard-fed
// machine relies on GETC/IN's blocking read rather than the KBSR poll path.
type Keys struct {
	out *bufio.Writer
}

// NewKeys opens the keyboard library's input stream.
func NewKeys() (*Keys, error) {
	if err := keyboard.Open(); err != nil {
		return nil, err
	}
	return &Keys{out: bufio.NewWriter(os.Stdout)}, nil
}

// PollReady always reports false; see the Keys doc comment.
func (k *Keys) PollReady() bool {
	return false
}

// ReadByte blocks for a single keypress and returns its rune as a byte.
func (k *Keys) ReadByte() (byte, error) {
	ch, key, err := keyboard.GetSingleKey()
	if err != nil {
		return 0, err
	}
	if ch == 0 {
		return byte(key), nil
	}
	return byte(ch), nil
}

// WriteByte buffers one byte of output.
func (k *Keys) WriteByte(b byte) error {
	return k.out.WriteByte(b)
}

// Flush forces buffered output to stdout.
func (k *Keys) Flush() error {
	return k.out.Flush()
}

// Close releases the keyboard library's input stream.
func (k *Keys) Close() error {
	keyboard.Close()
	return nil
}
