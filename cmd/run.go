package cmd

import (
	"fmt"
	"os"

	"time"

	"github.com/nlkl/chip8-go/internal/audio"
	"github.com/nlkl/chip8-go/internal/chip8"
	"github.com/nlkl/chip8-go/internal/display"
	"github.com/spf13/cobra"
)

const beepAssetPath = "assets/beep.mp3"

var runFlags struct {
	clockSpeed       uint16
	frameRate        uint16
	memorySize       uint16
	programStart     uint16
	spriteStart      uint16
	displayWidth     uint8
	displayHeight    uint8
	inPlaceShift     bool
	flexibleJumpOff  bool
	noAutoIncrement  bool
	flagResetOnLogic bool
	spriteWrap       bool
	spriteDrawDelay  bool
	verbose          bool
}

// runCmd runs the chip8 virtual machine against a ROM until the host
// window is closed.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8 emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	flags := runCmd.Flags()
	flags.Uint16Var(&runFlags.clockSpeed, "clock-speed", 500, "CPU cycles per second")
	flags.Uint16Var(&runFlags.frameRate, "frame-rate", 60, "display/timer frames per second")
	flags.Uint16Var(&runFlags.memorySize, "memory-size", 0x1000, "total addressable RAM in bytes")
	flags.Uint16Var(&runFlags.programStart, "program-start", 0x200, "address the ROM is loaded at")
	flags.Uint16Var(&runFlags.spriteStart, "sprite-start", 0x0000, "address of the built-in hex digit sprites")
	flags.Uint8Var(&runFlags.displayWidth, "display-width", 64, "display width in pixels")
	flags.Uint8Var(&runFlags.displayHeight, "display-height", 32, "display height in pixels")
	flags.BoolVar(&runFlags.inPlaceShift, "quirk-in-place-shift", false, "8XY6/8XYE shift VX in place instead of from VY")
	flags.BoolVar(&runFlags.flexibleJumpOff, "quirk-flexible-jump-offset", false, "BNNN jumps to NNN + VX (X from NNN's top nibble) instead of NNN + V0")
	flags.BoolVar(&runFlags.noAutoIncrement, "quirk-no-auto-increment", false, "FX55/FX65 leave I unchanged instead of advancing it")
	flags.BoolVar(&runFlags.flagResetOnLogic, "quirk-flag-reset-on-logic-ops", false, "OR/AND/XOR clear VF after writing their result")
	flags.BoolVar(&runFlags.spriteWrap, "quirk-sprite-wrap", false, "sprites wrap around display edges instead of clipping")
	flags.BoolVar(&runFlags.spriteDrawDelay, "quirk-sprite-draw-delay", false, "DRW draws at most one sprite per frame")
	flags.BoolVar(&runFlags.verbose, "verbose", false, "print the computed cycles-per-frame on startup")
}

func runChippy(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	program, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("\nerror reading ROM: %v\n", err)
		os.Exit(1)
	}

	settings := chip8.DefaultSettings(
		chip8.WithClockSpeed(runFlags.clockSpeed),
		chip8.WithFrameRate(runFlags.frameRate),
		chip8.WithMemorySize(runFlags.memorySize),
		chip8.WithProgramStartAddress(runFlags.programStart),
		chip8.WithSpriteStartAddress(runFlags.spriteStart),
		chip8.WithDisplaySize(runFlags.displayWidth, runFlags.displayHeight),
		chip8.WithInPlaceShift(runFlags.inPlaceShift),
		chip8.WithFlexibleJumpOffset(runFlags.flexibleJumpOff),
		chip8.WithAutoAddressIncrements(!runFlags.noAutoIncrement),
		chip8.WithFlagResetOnLogicOps(runFlags.flagResetOnLogic),
		chip8.WithSpriteWrapping(runFlags.spriteWrap),
		chip8.WithSpriteDrawDelay(runFlags.spriteDrawDelay),
	)

	state, err := chip8.NewState(settings, program)
	if err != nil {
		fmt.Printf("\nerror creating a new chip-8 VM: %v\n", err)
		os.Exit(1)
	}

	win, err := display.NewWindow(settings.DisplayWidth, settings.DisplayHeight)
	if err != nil {
		fmt.Printf("\nerror creating window: %v\n", err)
		os.Exit(1)
	}

	speaker := audio.NewSpeaker(beepAssetPath, audio.DefaultSettings())

	driver := chip8.NewDriver(state, chip8.NewRandSource(time.Now().UnixNano()))
	if runFlags.verbose {
		fmt.Printf("cycles per frame: %d\n", driver.CyclesPerFrame())
	}

	host := &windowHost{win: win, speaker: speaker}

	if err := driver.Run(host); err != nil {
		fmt.Printf("\nchip8 stopped: %v\n", err)
		os.Exit(1)
	}
}

// windowHost adapts a display.Window and an audio.Speaker into a
// chip8.HostIO, presenting each frame's output and sampling the
// window's keyboard state for the next frame's input.
type windowHost struct {
	win     *display.Window
	speaker *audio.Speaker
	keypad  chip8.Keypad
}

func (h *windowHost) Present(out chip8.OutputSnapshot) chip8.InputSnapshot {
	if out.SoundPlaying {
		h.speaker.Play()
	} else {
		h.speaker.Pause()
	}

	h.win.Draw(out.Display)

	keypad, muteToggled := h.win.PollKeypad(h.keypad)
	h.keypad = keypad
	if muteToggled {
		h.speaker.ToggleMute(audio.DefaultSettings().Volume)
	}

	return chip8.InputSnapshot{
		Quit:   h.win.WantsQuit(),
		Keypad: keypad,
	}
}
