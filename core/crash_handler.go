// Package core holds process-level helpers shared by the binaries.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	exit          = os.Exit
)

// SetCrashTerminal registers the screen to restore before printing a crash
func SetCrashTerminal(f Finalizer) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()
	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
