// Package console provides vm.Console implementations that talk to a real
// terminal: TTY puts the terminal in raw mode and polls stdin through a
// background reader goroutine, and Keys reads single keypresses through a
// third-party keyboard library.
package console

import (
	"bufio"
	"os"
	"sync"

	"golang.org/x/term"
)

// TTY is a vm.Console backed by the process's stdin/stdout, with stdin put
// into raw mode so the VM core sees unbuffered, unechoed bytes. A
// background goroutine feeds bytes from a blocking Read into a buffered
// channel so PollReady and ReadByte can be non-blocking and blocking
// respectively without either one touching the fd directly.
type TTY struct {
	fd       int
	oldState *term.State

	in     chan byte
	peeked *byte
	stopCh chan struct{}
	done   chan struct{}
	stop   sync.Once

	out *bufio.Writer
}

// NewTTY puts stdin into raw mode and starts the background reader. Call
// Close to restore the terminal and stop the reader.
func NewTTY() (*TTY, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	t := &TTY{
		fd:       fd,
		oldState: oldState,
		in:       make(chan byte, 256),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
		out:      bufio.NewWriter(os.Stdout),
	}
	go t.readLoop()
	return t, nil
}

func (t *TTY) readLoop() {
	defer close(t.done)
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			select {
			case t.in <- buf[0]:
			case <-t.stopCh:
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-t.stopCh:
			return
		default:
		}
	}
}

// PollReady reports whether a byte is waiting in the buffer, without
// blocking. A positive answer is consumed into peeked so the following
// ReadByte returns the same byte rather than a different, later one.
func (t *TTY) PollReady() bool {
	if t.peeked != nil {
		return true
	}
	select {
	case b := <-t.in:
		t.peeked = &b
		return true
	default:
		return false
	}
}

// ReadByte blocks until a byte is available from stdin.
func (t *TTY) ReadByte() (byte, error) {
	if t.peeked != nil {
		b := *t.peeked
		t.peeked = nil
		return b, nil
	}
	b, ok := <-t.in
	if !ok {
		return 0, errClosed
	}
	return b, nil
}

// WriteByte buffers one byte of output.
func (t *TTY) WriteByte(b byte) error {
	return t.out.WriteByte(b)
}

// Flush forces buffered output to stdout.
func (t *TTY) Flush() error {
	return t.out.Flush()
}

// Close stops the background reader and restores cooked terminal mode.
// Safe to call more than once.
func (t *TTY) Close() error {
	t.stop.Do(func() {
		close(t.stopCh)
	})
	<-t.done
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}
