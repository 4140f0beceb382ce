package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lc3vm/console"
	"lc3vm/vm"
)

// Exit codes for the command-line contract: no images given, an image
// failed to load, a normal HALT, an illegal opcode, and an external
// interrupt (SIGINT/SIGTERM).
const (
	exitNoImages    = 2
	exitLoadFailed  = 1
	exitHalt        = 0
	exitIllegalOp   = -3
	exitInterrupted = -2
)

var (
	dumpFlag = flag.Bool("dump", false, "disassemble each loaded image instead of running it")
	keysFlag = flag.Bool("keys", false, "read input one keypress at a time instead of raw-mode stdin")
)

type exitNotifier struct{ halted bool }

func (e *exitNotifier) Halted() { e.halted = true }

func main() {
	flag.Parse()
	images := flag.Args()

	if len(images) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lc3vm [-dump] [-keys] image [image ...]")
		os.Exit(exitNoImages)
	}

	machine := vm.NewMachine(nil)
	var lowest, end uint32
	for i, path := range images {
		origin, err := loadImageFile(machine, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lc3vm: %s: %v\n", path, err)
			os.Exit(exitLoadFailed)
		}
		if i == 0 || uint32(origin) < lowest {
			lowest = uint32(origin)
		}
		if info, err := os.Stat(path); err == nil {
			if e := uint32(origin) + uint32(info.Size()-2)/2; e > end {
				end = e
			}
		}
	}

	if *dumpFlag {
		if end > 0xFFFF {
			end = 0xFFFF
		}
		for _, line := range vm.Disassemble(&machine.Mem, uint16(lowest), uint16(end)) {
			fmt.Println(line)
		}
		return
	}

	var con interface {
		vm.Console
		Close() error
	}
	var err error
	if *keysFlag {
		con, err = console.NewKeys()
	} else {
		con, err = console.NewTTY()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: console: %v\n", err)
		os.Exit(exitLoadFailed)
	}
	defer con.Close()
	machine.Console = con

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		con.Close()
		os.Exit(exitInterrupted)
	}()

	notifier := &exitNotifier{}
	if err := machine.Run(notifier); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIllegalOp)
	}
	os.Exit(exitHalt)
}

func loadImageFile(m *vm.Machine, path string) (uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return vm.LoadImage(&m.Mem, f)
}
