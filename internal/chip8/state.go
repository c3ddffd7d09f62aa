package chip8

import "fmt"

// RegisterCount is the number of general-purpose 8-bit registers.
const RegisterCount = 16

// VF is the index of the flag register, also known as V15.
const VF = 0xF

// digitSprites is the built-in 4x5 hex digit font, one digit per five
// bytes, in the layout every reference CHIP-8 interpreter ships.
var digitSprites = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// State is the single aggregate the CPU executes against: memory,
// registers, stack, program counter, address/timer registers, the
// framebuffer, and the keypad. The Driver owns it exclusively.
type State struct {
	Settings Settings

	memory    []byte
	registers [RegisterCount]byte
	stack     []uint16

	I  uint16
	PC uint16
	DT byte
	ST byte

	Display *Display
	Keypad  Keypad
}

// NewState constructs a State from settings and a program image: it
// zeroes memory, writes the built-in digit sprites at
// settings.SpriteStartAddress, writes program at
// settings.ProgramStartAddress, and sets PC to that same address.
func NewState(settings Settings, program []byte) (*State, error) {
	maxProgramLen := int(settings.MemorySize) - int(settings.ProgramStartAddress)
	if len(program) > maxProgramLen {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrLoadTooLarge, len(program), maxProgramLen)
	}

	s := &State{
		Settings: settings,
		memory:   make([]byte, settings.MemorySize),
		PC:       settings.ProgramStartAddress,
		Display:  NewDisplay(settings.DisplayWidth, settings.DisplayHeight, settings.UseSpriteWrapping),
		Keypad:   NewKeypad(),
	}

	if err := s.WriteMemory(settings.SpriteStartAddress, digitSprites[:]); err != nil {
		return nil, err
	}
	if err := s.WriteMemory(settings.ProgramStartAddress, program); err != nil {
		return nil, err
	}
	return s, nil
}

// MemorySize returns the total addressable RAM in bytes.
func (s *State) MemorySize() int { return len(s.memory) }

// ReadMemory returns a copy of size bytes starting at address, or
// ErrOutOfBoundsMemory if the range exceeds the memory bounds.
func (s *State) ReadMemory(address uint16, size int) ([]byte, error) {
	end := int(address) + size
	if end > len(s.memory) {
		return nil, fmt.Errorf("%w: read [%d,%d)", ErrOutOfBoundsMemory, address, end)
	}
	out := make([]byte, size)
	copy(out, s.memory[address:end])
	return out, nil
}

// ReadByte returns the single byte at address.
func (s *State) ReadByte(address uint16) (byte, error) {
	if int(address) >= len(s.memory) {
		return 0, fmt.Errorf("%w: read address %d", ErrOutOfBoundsMemory, address)
	}
	return s.memory[address], nil
}

// WriteMemory copies data into memory starting at address, or returns
// ErrOutOfBoundsMemory if the range exceeds the memory bounds.
func (s *State) WriteMemory(address uint16, data []byte) error {
	end := int(address) + len(data)
	if end > len(s.memory) {
		return fmt.Errorf("%w: write [%d,%d)", ErrOutOfBoundsMemory, address, end)
	}
	copy(s.memory[address:end], data)
	return nil
}

// WriteByte writes a single byte at address.
func (s *State) WriteByte(address uint16, value byte) error {
	if int(address) >= len(s.memory) {
		return fmt.Errorf("%w: write address %d", ErrOutOfBoundsMemory, address)
	}
	s.memory[address] = value
	return nil
}

// Register returns the value of V[r]. r is masked to 4 bits: decode
// guarantees every register index it produces is already in 0..=15.
func (s *State) Register(r uint8) byte {
	return s.registers[r&0xF]
}

// SetRegister writes the value of V[r].
func (s *State) SetRegister(r uint8, value byte) {
	s.registers[r&0xF] = value
}

// PushReturnAddress pushes addr onto the call stack, or returns
// ErrStackOverflow if the stack is already at StackDepth.
func (s *State) PushReturnAddress(addr uint16) error {
	if len(s.stack) >= StackDepth {
		return ErrStackOverflow
	}
	s.stack = append(s.stack, addr)
	return nil
}

// PopReturnAddress pops the most recently pushed return address, or
// returns ErrStackUnderflow if the stack is empty.
func (s *State) PopReturnAddress() (uint16, error) {
	if len(s.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	addr := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return addr, nil
}

// StackDepthUsed returns the current number of nested calls.
func (s *State) StackDepthUsed() int { return len(s.stack) }

// DecrementTimers decrements DT and ST by 1 each, floor-clamped at 0.
// Called once per frame by the Driver, never per cycle.
func (s *State) DecrementTimers() {
	if s.DT > 0 {
		s.DT--
	}
	if s.ST > 0 {
		s.ST--
	}
}

// SoundPlaying reports whether the sound timer is currently audible.
func (s *State) SoundPlaying() bool {
	return s.ST > 0
}

// ProgramTerminated reports whether PC has advanced past the last
// two-byte instruction slot in memory.
func (s *State) ProgramTerminated() bool {
	return int(s.PC) > len(s.memory)-2
}
