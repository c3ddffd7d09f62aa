package chip8

// Settings is the immutable configuration a VM is built from: clock
// speed, frame rate, memory layout, display size, and the quirk
// toggles that let individual ROMs select between historically
// divergent CHIP-8 interpreter behaviors.
type Settings struct {
	// FrameRate is the display/timer refresh rate in Hz.
	FrameRate uint16
	// ClockSpeed is the CPU cycle rate in Hz.
	ClockSpeed uint16
	// ProgramStartAddress is where ROM bytes are loaded and PC starts.
	ProgramStartAddress uint16
	// MemorySize is the total addressable RAM in bytes.
	MemorySize uint16
	// SpriteStartAddress is the base address of the built-in hex digit sprites.
	SpriteStartAddress uint16
	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth uint8
	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight uint8

	// UseInPlaceShift makes 8XY6/8XYE shift Vx in place, ignoring Vy.
	UseInPlaceShift bool
	// UseFlexibleJumpOffset makes BNNN add V[(nnn>>8)&0xF] instead of V0.
	UseFlexibleJumpOffset bool
	// UseAutoAddressIncrements makes FX55/FX65 advance I by end_register+1.
	UseAutoAddressIncrements bool
	// UseFlagResetOnLogicOps clears VF after OR/AND/XOR write their result.
	UseFlagResetOnLogicOps bool
	// UseSpriteWrapping wraps sprite pixels around the display edges
	// instead of clipping them.
	UseSpriteWrapping bool
	// UseSpriteDrawDelay makes DRW yield Wait after drawing, limiting
	// the program to one sprite draw per frame.
	UseSpriteDrawDelay bool
}

// StackDepth bounds the CALL/RET stack. CHIP-8 programs rarely nest
// more than a handful of calls; 16 matches the deepest historical
// interpreters accommodate.
const StackDepth = 16

// Option configures a Settings value produced by DefaultSettings.
type Option func(*Settings)

// DefaultSettings returns the Settings most ROMs assume, generalized
// by zero or more Option values.
func DefaultSettings(opts ...Option) Settings {
	s := Settings{
		FrameRate:                60,
		ClockSpeed:               500,
		ProgramStartAddress:      0x200,
		MemorySize:               0x1000,
		SpriteStartAddress:       0x0000,
		DisplayWidth:             64,
		DisplayHeight:            32,
		UseInPlaceShift:          false,
		UseFlexibleJumpOffset:    false,
		UseAutoAddressIncrements: true,
		UseFlagResetOnLogicOps:   false,
		UseSpriteWrapping:        false,
		UseSpriteDrawDelay:       false,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithClockSpeed overrides the CPU cycle rate in Hz.
func WithClockSpeed(hz uint16) Option {
	return func(s *Settings) { s.ClockSpeed = hz }
}

// WithFrameRate overrides the display/timer refresh rate in Hz.
func WithFrameRate(hz uint16) Option {
	return func(s *Settings) { s.FrameRate = hz }
}

// WithMemorySize overrides the total addressable RAM in bytes.
func WithMemorySize(size uint16) Option {
	return func(s *Settings) { s.MemorySize = size }
}

// WithProgramStartAddress overrides the load address and initial PC.
func WithProgramStartAddress(addr uint16) Option {
	return func(s *Settings) { s.ProgramStartAddress = addr }
}

// WithSpriteStartAddress overrides the base of the built-in hex sprites.
func WithSpriteStartAddress(addr uint16) Option {
	return func(s *Settings) { s.SpriteStartAddress = addr }
}

// WithDisplaySize overrides the framebuffer dimensions.
func WithDisplaySize(width, height uint8) Option {
	return func(s *Settings) { s.DisplayWidth = width; s.DisplayHeight = height }
}

// WithInPlaceShift toggles the 8XY6/8XYE in-place shift quirk.
func WithInPlaceShift(enabled bool) Option {
	return func(s *Settings) { s.UseInPlaceShift = enabled }
}

// WithFlexibleJumpOffset toggles the BNNN register-selected offset quirk.
func WithFlexibleJumpOffset(enabled bool) Option {
	return func(s *Settings) { s.UseFlexibleJumpOffset = enabled }
}

// WithAutoAddressIncrements toggles the FX55/FX65 auto-increment-of-I quirk.
func WithAutoAddressIncrements(enabled bool) Option {
	return func(s *Settings) { s.UseAutoAddressIncrements = enabled }
}

// WithFlagResetOnLogicOps toggles the OR/AND/XOR clears-VF quirk.
func WithFlagResetOnLogicOps(enabled bool) Option {
	return func(s *Settings) { s.UseFlagResetOnLogicOps = enabled }
}

// WithSpriteWrapping toggles wrap-vs-clip sprite edge behavior.
func WithSpriteWrapping(enabled bool) Option {
	return func(s *Settings) { s.UseSpriteWrapping = enabled }
}

// WithSpriteDrawDelay toggles the one-sprite-per-frame draw quirk.
func WithSpriteDrawDelay(enabled bool) Option {
	return func(s *Settings) { s.UseSpriteDrawDelay = enabled }
}
