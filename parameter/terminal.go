package parameter

import "time"

// Terminal Input
const (
	// KeyHoldTimeout keeps a key held after its last repeat event; terminals report no key-up
	KeyHoldTimeout = 120 * time.Millisecond
)

const (
	// KeyInitialHold covers the keyboard repeat delay before the first repeat arrives
	KeyInitialHold = 500 * time.Millisecond
)
