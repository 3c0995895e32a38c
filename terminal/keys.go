package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// Button is a game control bound to one or more keys
type Button uint8

const (
	ButtonUp Button = iota
	ButtonLeft
	ButtonRight
	ButtonFire
	buttonCount
)

type keyState struct {
	last      time.Time
	repeating bool
	down      bool
}

// Keys derives held buttons from key press and repeat events
// A button stays held for KeyInitialHold after the first press and
// the hold timeout after each repeat
type Keys struct {
	state   [buttonCount]keyState
	quit    bool
	resized bool
	hold    time.Duration
	now     func() time.Time
}

// NewKeys returns a tracker on the wall clock; hold <= 0 uses KeyHoldTimeout
func NewKeys(hold time.Duration) *Keys {
	return &Keys{hold: hold, now: time.Now}
}

// ButtonFor maps a key and its rune to a button
func ButtonFor(key tcell.Key, r rune) (Button, bool) {
	switch key {
	case tcell.KeyUp:
		return ButtonUp, true
	case tcell.KeyLeft:
		return ButtonLeft, true
	case tcell.KeyRight:
		return ButtonRight, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k':
			return ButtonUp, true
		case 'a', 'A', 'h':
			return ButtonLeft, true
		case 'd', 'D', 'l':
			return ButtonRight, true
		case ' ':
			return ButtonFire, true
		}
	}
	return 0, false
}

func isQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// HandleEvent records one tcell event
func (k *Keys) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		k.resized = true
	}
}

func (k *Keys) handleKey(key tcell.Key, r rune) {
	if isQuit(key, r) {
		k.quit = true
		return
	}
	b, ok := ButtonFor(key, r)
	if !ok {
		return
	}
	s := &k.state[b]
	now := k.now()
	// A second event inside the initial hold window is a repeat
	s.repeating = s.down && now.Sub(s.last) < parameter.KeyInitialHold
	s.down = true
	s.last = now
}

// Held reports whether b is still considered pressed
func (k *Keys) Held(b Button) bool {
	s := &k.state[b]
	if !s.down {
		return false
	}
	hold := parameter.KeyInitialHold
	if s.repeating {
		hold = k.hold
		if hold <= 0 {
			hold = parameter.KeyHoldTimeout
		}
	}
	if k.now().Sub(s.last) > hold {
		s.down = false
		s.repeating = false
		return false
	}
	return true
}

// Input builds the frame input for step dt in seconds
func (k *Keys) Input(dt float64) engine.Input {
	return engine.Input{
		Up:        k.Held(ButtonUp),
		Left:      k.Held(ButtonLeft),
		Right:     k.Held(ButtonRight),
		Fire:      k.Held(ButtonFire),
		DeltaTime: dt,
	}
}

// Quit reports whether a quit key was pressed
func (k *Keys) Quit() bool { return k.quit }

// Resized reports and clears a pending resize
func (k *Keys) Resized() bool {
	r := k.resized
	k.resized = false
	return r
}
