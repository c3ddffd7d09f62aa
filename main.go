package main

import (
	"github.com/faiface/pixel/pixelgl"
	"github.com/nlkl/chip8-go/cmd"
)

func main() {
	// pixelgl needs access to the main thread so this pattern is suggested
	pixelgl.Run(cmd.Execute)
}
