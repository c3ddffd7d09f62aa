package chip8

import "errors"

// Sentinel errors surfaced by State and CPU. The host can branch on
// these with errors.Is; the core itself never attempts recovery.
var (
	// ErrLoadTooLarge is returned when a program image does not fit
	// between program_start_address and the end of memory.
	ErrLoadTooLarge = errors.New("chip8: program too large for available memory")

	// ErrOutOfBoundsMemory is returned by any memory read or write
	// whose address range falls outside [0, memory_size).
	ErrOutOfBoundsMemory = errors.New("chip8: memory access out of bounds")

	// ErrStackUnderflow is returned by RET when the call stack is empty.
	ErrStackUnderflow = errors.New("chip8: stack underflow on return")

	// ErrStackOverflow is returned by CALL when the stack is already
	// at its configured depth limit.
	ErrStackOverflow = errors.New("chip8: stack overflow on call")
)
