package game

import (
	"errors"
	"fmt"
	"strings"
)

type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	numKeys
)

var ErrUnknownKey = errors.New("unknown key")

var keyNames = [numKeys]string{"up", "down", "left", "right", "space"}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey maps a browser KeyboardEvent key or code to a Key.
func ParseKey(name string) (Key, error) {
	switch strings.ToLower(name) {
	case "arrowup", "keyw", "w", "up":
		return KeyUp, nil
	case "arrowdown", "keys", "s", "down":
		return KeyDown, nil
	case "arrowleft", "keya", "a", "left":
		return KeyLeft, nil
	case "arrowright", "keyd", "d", "right":
		return KeyRight, nil
	case " ", "space", "spacebar":
		return KeySpace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// InputState is the pressed state of every tracked key.
type InputState [numKeys]bool

func (in *InputState) Set(k Key, down bool) {
	if k < numKeys {
		in[k] = down
	}
}

func (in InputState) Pressed(k Key) bool {
	return k < numKeys && in[k]
}

// Moving reports whether any directional key is held.
func (in InputState) Moving() bool {
	return in[KeyUp] || in[KeyDown] || in[KeyLeft] || in[KeyRight]
}

func (in InputState) Jumping() bool {
	return in[KeySpace]
}
