package chip8

import "time"

// InputSnapshot is the per-frame input the host hands back to the
// Driver: the keypad state it observed since the previous frame, and
// whether the host wants the run to stop.
type InputSnapshot struct {
	Quit   bool
	Keypad Keypad
}

// OutputSnapshot is the per-frame output the Driver hands to the
// host: an immutable view of the framebuffer and whether the sound
// timer is currently audible.
type OutputSnapshot struct {
	Display      *Display
	SoundPlaying bool
}

// HostIO is the collaborator the Driver calls once per frame. The
// host is expected to sample input and present the framebuffer
// synchronously within Present.
type HostIO interface {
	Present(out OutputSnapshot) InputSnapshot
}

// Driver is the frame-paced execution loop: it decrements timers,
// produces an output snapshot, obtains an input snapshot from the
// host, installs it into State, runs up to CyclesPerFrame CPU cycles,
// and sleeps to the frame deadline. The Driver exclusively owns State.
type Driver struct {
	state *State
	rng   RandSource

	frameDuration  time.Duration
	cycleDuration  time.Duration
	cyclesPerFrame int
}

// NewDriver builds a Driver around state, pacing cycles and frames
// according to state.Settings.ClockSpeed and state.Settings.FrameRate.
func NewDriver(state *State, rng RandSource) *Driver {
	frameDuration := time.Second / time.Duration(state.Settings.FrameRate)
	cycleDuration := time.Second / time.Duration(state.Settings.ClockSpeed)
	cyclesPerFrame := int(frameDuration / cycleDuration)
	if cyclesPerFrame < 1 {
		cyclesPerFrame = 1
	}

	return &Driver{
		state:          state,
		rng:            rng,
		frameDuration:  frameDuration,
		cycleDuration:  cycleDuration,
		cyclesPerFrame: cyclesPerFrame,
	}
}

// CyclesPerFrame returns the number of CPU cycles the Driver issues
// per frame at the configured clock speed and frame rate.
func (d *Driver) CyclesPerFrame() int { return d.cyclesPerFrame }

// Run drives the VM until the host requests a quit, PC runs off the
// end of memory, or a fatal CPU error occurs. A non-nil error means
// the CPU hit a fatal condition (stack under/overflow, an
// out-of-bounds memory access); the Driver does not attempt recovery.
func (d *Driver) Run(host HostIO) error {
	for {
		frameStart := time.Now()

		d.state.DecrementTimers()

		out := OutputSnapshot{
			Display:      d.state.Display,
			SoundPlaying: d.state.SoundPlaying(),
		}
		in := host.Present(out)

		d.state.Keypad = in.Keypad
		if in.Quit {
			return nil
		}

		for i := 0; i < d.cyclesPerFrame; i++ {
			status, err := Cycle(d.state, d.rng)
			if err != nil {
				return err
			}
			if status == Wait {
				break
			}
			if status == Done {
				return nil
			}
		}

		if elapsed := time.Since(frameStart); elapsed < d.frameDuration {
			time.Sleep(d.frameDuration - elapsed)
		}
	}
}
