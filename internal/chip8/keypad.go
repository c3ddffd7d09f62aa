package chip8

// KeyState is a single key's position in the three-state lifecycle
// required by FX0A (WaitForKeyDown): a key must be observed going
// from Pressed to Released before a blocking read is satisfied, so a
// held key never unblocks the instruction on its own.
type KeyState int

const (
	// KeyIdle is a key that is not currently pressed and was not
	// released since the last end-of-frame release roll.
	KeyIdle KeyState = iota
	// KeyPressed is a key currently held down.
	KeyPressed
	// KeyReleased is a key that was pressed and has since been
	// released, but not yet rolled back to KeyIdle.
	KeyReleased
)

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keypad tracks the 16-key hex keypad state across frames.
type Keypad struct {
	keys [KeyCount]KeyState
}

// NewKeypad returns a keypad with every key idle.
func NewKeypad() Keypad {
	return Keypad{}
}

// Press transitions key to KeyPressed, regardless of its previous state.
func (k *Keypad) Press(key uint8) {
	k.keys[key&0xF] = KeyPressed
}

// ReleaseAll performs the host's end-of-frame release roll: every
// Pressed key becomes Released, every Released key becomes Idle, and
// Idle keys stay Idle. A key never skips Pressed on its way back to Idle.
func (k *Keypad) ReleaseAll() {
	for i := range k.keys {
		switch k.keys[i] {
		case KeyPressed:
			k.keys[i] = KeyReleased
		case KeyReleased:
			k.keys[i] = KeyIdle
		}
	}
}

// IsPressed reports whether key is currently held down.
func (k *Keypad) IsPressed(key uint8) bool {
	return k.keys[key&0xF] == KeyPressed
}

// IsReleased reports whether key transitioned to released since the
// last release roll and has not yet rolled over to idle.
func (k *Keypad) IsReleased(key uint8) bool {
	return k.keys[key&0xF] == KeyReleased
}

// ReleasedKeys returns the indices of every key in the Released state,
// ordered by index; used by FX0A to find a key to satisfy the wait.
func (k *Keypad) ReleasedKeys() []uint8 {
	var released []uint8
	for i, s := range k.keys {
		if s == KeyReleased {
			released = append(released, uint8(i))
		}
	}
	return released
}
