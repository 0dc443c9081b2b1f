package main

import (
	"github.com/bradford-hamilton/chippy/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs access to the main thread, so the whole cobra
	// command tree (including `chippy run`, which opens a window) runs
	// inside pixelgl.Run rather than being called directly.
	pixelgl.Run(cmd.Execute)
}
