package chip8

import "testing"

func instructionFixtures() []struct {
	word  uint16
	instr Instruction
} {
	return []struct {
		word  uint16
		instr Instruction
	}{
		{0x00E0, Instruction{Op: OpClearScreen, Word: 0x00E0}},
		{0x00EE, Instruction{Op: OpReturn, Word: 0x00EE}},
		{0x0123, Instruction{Op: OpSysCall, NNN: 0x123, Word: 0x0123}},
		{0x1123, Instruction{Op: OpJump, NNN: 0x123, Word: 0x1123}},
		{0x2123, Instruction{Op: OpCall, NNN: 0x123, Word: 0x2123}},
		{0x3123, Instruction{Op: OpSkipIfValue, X: 0x1, NN: 0x23, Word: 0x3123}},
		{0x4123, Instruction{Op: OpSkipIfNotValue, X: 0x1, NN: 0x23, Word: 0x4123}},
		{0x5120, Instruction{Op: OpSkipIfEqual, X: 0x1, Y: 0x2, Word: 0x5120}},
		{0x6123, Instruction{Op: OpLoadValue, X: 0x1, NN: 0x23, Word: 0x6123}},
		{0x7123, Instruction{Op: OpAddValue, X: 0x1, NN: 0x23, Word: 0x7123}},
		{0x8120, Instruction{Op: OpLoad, X: 0x1, Y: 0x2, Word: 0x8120}},
		{0x8121, Instruction{Op: OpOr, X: 0x1, Y: 0x2, Word: 0x8121}},
		{0x8122, Instruction{Op: OpAnd, X: 0x1, Y: 0x2, Word: 0x8122}},
		{0x8123, Instruction{Op: OpXor, X: 0x1, Y: 0x2, Word: 0x8123}},
		{0x8124, Instruction{Op: OpAdd, X: 0x1, Y: 0x2, Word: 0x8124}},
		{0x8125, Instruction{Op: OpSubtract, X: 0x1, Y: 0x2, Word: 0x8125}},
		{0x8126, Instruction{Op: OpShiftRight, X: 0x1, Y: 0x2, Word: 0x8126}},
		{0x8127, Instruction{Op: OpSubtractFrom, X: 0x1, Y: 0x2, Word: 0x8127}},
		{0x812E, Instruction{Op: OpShiftLeft, X: 0x1, Y: 0x2, Word: 0x812E}},
		{0x9120, Instruction{Op: OpSkipIfNotEqual, X: 0x1, Y: 0x2, Word: 0x9120}},
		{0xA123, Instruction{Op: OpLoadAddress, NNN: 0x123, Word: 0xA123}},
		{0xB123, Instruction{Op: OpJumpWithOffset, NNN: 0x123, Word: 0xB123}},
		{0xC123, Instruction{Op: OpRandom, X: 0x1, NN: 0x23, Word: 0xC123}},
		{0xD123, Instruction{Op: OpDrawSprite, X: 0x1, Y: 0x2, N: 0x3, Word: 0xD123}},
		{0xE19E, Instruction{Op: OpSkipIfKeyDown, X: 0x1, Word: 0xE19E}},
		{0xE1A1, Instruction{Op: OpSkipIfKeyUp, X: 0x1, Word: 0xE1A1}},
		{0xF107, Instruction{Op: OpLoadDelayTimer, X: 0x1, Word: 0xF107}},
		{0xF10A, Instruction{Op: OpWaitForKeyDown, X: 0x1, Word: 0xF10A}},
		{0xF115, Instruction{Op: OpSetDelayTimer, X: 0x1, Word: 0xF115}},
		{0xF118, Instruction{Op: OpSetSoundTimer, X: 0x1, Word: 0xF118}},
		{0xF11E, Instruction{Op: OpAddToAddress, X: 0x1, Word: 0xF11E}},
		{0xF129, Instruction{Op: OpLoadDigitSpriteAddress, X: 0x1, Word: 0xF129}},
		{0xF133, Instruction{Op: OpWriteMemoryFromBCD, X: 0x1, Word: 0xF133}},
		{0xF155, Instruction{Op: OpWriteMemory, X: 0x1, Word: 0xF155}},
		{0xF165, Instruction{Op: OpReadMemory, X: 0x1, Word: 0xF165}},
		{0x9BCD, Instruction{Op: OpUnknown, Word: 0x9BCD}},
	}
}

func TestDecodeInstruction(t *testing.T) {
	for _, fx := range instructionFixtures() {
		got := Decode(fx.word)
		if got != fx.instr {
			t.Errorf("Decode(%#04x) = %+v, want %+v", fx.word, got, fx.instr)
		}
	}
}

func TestEncodeInstructionRoundTrip(t *testing.T) {
	for _, fx := range instructionFixtures() {
		if fx.instr.Op == OpUnknown {
			continue
		}
		if got := fx.instr.Encode(); got != fx.word {
			t.Errorf("Instruction{%+v}.Encode() = %#04x, want %#04x", fx.instr, got, fx.word)
		}
	}
}

func TestDecodeDistinguishesClearScreenAndReturnFromSysCall(t *testing.T) {
	if Decode(0x00E0).Op != OpClearScreen {
		t.Error("0x00E0 should decode as ClearScreen, not SysCall")
	}
	if Decode(0x00EE).Op != OpReturn {
		t.Error("0x00EE should decode as Return, not SysCall")
	}
	if Decode(0x0ABC).Op != OpSysCall {
		t.Error("0x0ABC should decode as SysCall")
	}
}
