package chip8

import "fmt"

// Status is the result of one CPU cycle: whether the Driver should
// keep issuing cycles this frame, stop and wait for the next frame,
// or stop executing the program entirely.
type Status int

const (
	// Continue means the Driver may issue another cycle this frame.
	Continue Status = iota
	// Wait means the cycle stalled (a blocking keypress, or a sprite
	// draw delay) and the Driver should stop issuing cycles this frame.
	Wait
	// Done means PC has run off the end of memory; execution is over.
	Done
)

// Cycle fetches, decodes, and executes one instruction against state.
// rng supplies the byte stream consulted by CXNN. A non-nil error
// indicates a fatal condition (stack under/overflow, an out-of-bounds
// memory access): the Driver must stop issuing further cycles.
func Cycle(state *State, rng RandSource) (Status, error) {
	if state.ProgramTerminated() {
		return Done, nil
	}

	hi, err := state.ReadByte(state.PC)
	if err != nil {
		return Done, err
	}
	lo, err := state.ReadByte(state.PC + 1)
	if err != nil {
		return Done, err
	}
	word := uint16(hi)<<8 | uint16(lo)
	instr := Decode(word)

	state.PC += 2

	return execute(state, instr, rng)
}

func execute(s *State, instr Instruction, rng RandSource) (Status, error) {
	switch instr.Op {
	case OpClearScreen:
		s.Display.Clear()

	case OpReturn:
		addr, err := s.PopReturnAddress()
		if err != nil {
			return Done, err
		}
		s.PC = addr

	case OpSysCall:
		// Ignored: legitimate ROMs carry trailing data that can decode
		// to a 0NNN instruction nobody executes.

	case OpJump:
		s.PC = instr.NNN

	case OpJumpWithOffset:
		offsetReg := uint8(0)
		if s.Settings.UseFlexibleJumpOffset {
			offsetReg = uint8(instr.NNN >> 8 & 0xF)
		}
		s.PC = instr.NNN + uint16(s.Register(offsetReg))

	case OpCall:
		if err := s.PushReturnAddress(s.PC); err != nil {
			return Done, err
		}
		s.PC = instr.NNN

	case OpSkipIfValue:
		if s.Register(instr.X) == instr.NN {
			s.PC += 2
		}

	case OpSkipIfNotValue:
		if s.Register(instr.X) != instr.NN {
			s.PC += 2
		}

	case OpSkipIfEqual:
		if s.Register(instr.X) == s.Register(instr.Y) {
			s.PC += 2
		}

	case OpSkipIfNotEqual:
		if s.Register(instr.X) != s.Register(instr.Y) {
			s.PC += 2
		}

	case OpLoadValue:
		s.SetRegister(instr.X, instr.NN)

	case OpAddValue:
		s.SetRegister(instr.X, s.Register(instr.X)+instr.NN)

	case OpLoad:
		s.SetRegister(instr.X, s.Register(instr.Y))

	case OpOr:
		s.SetRegister(instr.X, s.Register(instr.X)|s.Register(instr.Y))
		if s.Settings.UseFlagResetOnLogicOps {
			s.SetRegister(VF, 0)
		}

	case OpAnd:
		s.SetRegister(instr.X, s.Register(instr.X)&s.Register(instr.Y))
		if s.Settings.UseFlagResetOnLogicOps {
			s.SetRegister(VF, 0)
		}

	case OpXor:
		s.SetRegister(instr.X, s.Register(instr.X)^s.Register(instr.Y))
		if s.Settings.UseFlagResetOnLogicOps {
			s.SetRegister(VF, 0)
		}

	case OpAdd:
		sum := uint16(s.Register(instr.X)) + uint16(s.Register(instr.Y))
		s.SetRegister(instr.X, byte(sum))
		if sum > 0xFF {
			s.SetRegister(VF, 1)
		} else {
			s.SetRegister(VF, 0)
		}

	case OpSubtract:
		vx, vy := s.Register(instr.X), s.Register(instr.Y)
		diff := 0x100 + uint16(vx) - uint16(vy)
		s.SetRegister(instr.X, byte(diff))
		if vy <= vx {
			s.SetRegister(VF, 1)
		} else {
			s.SetRegister(VF, 0)
		}

	case OpSubtractFrom:
		vx, vy := s.Register(instr.X), s.Register(instr.Y)
		diff := 0x100 + uint16(vy) - uint16(vx)
		s.SetRegister(instr.X, byte(diff))
		if vx <= vy {
			s.SetRegister(VF, 1)
		} else {
			s.SetRegister(VF, 0)
		}

	case OpShiftRight:
		v := s.Register(instr.Y)
		if s.Settings.UseInPlaceShift {
			v = s.Register(instr.X)
		}
		s.SetRegister(instr.X, v>>1)
		s.SetRegister(VF, v&0x1)

	case OpShiftLeft:
		v := s.Register(instr.Y)
		if s.Settings.UseInPlaceShift {
			v = s.Register(instr.X)
		}
		s.SetRegister(instr.X, v<<1)
		s.SetRegister(VF, v>>7&0x1)

	case OpRandom:
		s.SetRegister(instr.X, rng.Byte()&instr.NN)

	case OpDrawSprite:
		sprite, err := s.ReadMemory(s.I, int(instr.N))
		if err != nil {
			return Done, err
		}
		collision := s.Display.ApplySprite(s.Register(instr.X), s.Register(instr.Y), sprite)
		if collision {
			s.SetRegister(VF, 1)
		} else {
			s.SetRegister(VF, 0)
		}
		if s.Settings.UseSpriteDrawDelay {
			return Wait, nil
		}

	case OpSkipIfKeyDown:
		if s.Keypad.IsPressed(s.Register(instr.X) & 0xF) {
			s.PC += 2
		}

	case OpSkipIfKeyUp:
		if !s.Keypad.IsPressed(s.Register(instr.X) & 0xF) {
			s.PC += 2
		}

	case OpWaitForKeyDown:
		released := s.Keypad.ReleasedKeys()
		if len(released) == 0 {
			s.PC -= 2
			return Wait, nil
		}
		s.SetRegister(instr.X, released[0])

	case OpLoadDelayTimer:
		s.SetRegister(instr.X, s.DT)

	case OpSetDelayTimer:
		s.DT = s.Register(instr.X)

	case OpSetSoundTimer:
		s.ST = s.Register(instr.X)

	case OpLoadAddress:
		s.I = instr.NNN

	case OpAddToAddress:
		s.I = s.I + uint16(s.Register(instr.X))

	case OpLoadDigitSpriteAddress:
		s.I = s.Settings.SpriteStartAddress + uint16(s.Register(instr.X)&0xF)*5

	case OpWriteMemoryFromBCD:
		v := s.Register(instr.X)
		bcd := []byte{v / 100, (v / 10) % 10, v % 10}
		if err := s.WriteMemory(s.I, bcd); err != nil {
			return Done, err
		}

	case OpWriteMemory:
		data := make([]byte, int(instr.X)+1)
		for r := uint8(0); r <= instr.X; r++ {
			data[r] = s.Register(r)
		}
		if err := s.WriteMemory(s.I, data); err != nil {
			return Done, err
		}
		if s.Settings.UseAutoAddressIncrements {
			s.I += uint16(instr.X) + 1
		}

	case OpReadMemory:
		data, err := s.ReadMemory(s.I, int(instr.X)+1)
		if err != nil {
			return Done, err
		}
		for r, v := range data {
			s.SetRegister(uint8(r), v)
		}
		if s.Settings.UseAutoAddressIncrements {
			s.I += uint16(instr.X) + 1
		}

	case OpUnknown:
		// Silently ignored: required for compatibility with ROMs that
		// carry data-as-code near their tail.

	default:
		return Done, fmt.Errorf("chip8: undispatched instruction op %d", instr.Op)
	}

	return Continue, nil
}
