package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/bradford-hamilton/chippy/internal/pixel"
	"github.com/spf13/cobra"
)

const (
	refreshRate   = 60
	frameBudgetUs = uint32(time.Second / refreshRate / time.Microsecond)
)

var debugOnFault bool

// runCmd loads a ROM, opens a window, and drives the 60Hz frame loop
// until the window closes or an interrupt/fatal executor error stops it.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().BoolVar(&debugOnFault, "debug", false, "print a register/stack dump on a fatal executor error")
}

func runChippy(cmd *cobra.Command, args []string) {
	romBytes, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading rom: %v\n", err)
		os.Exit(1)
	}

	vm, err := chip8.New(romBytes)
	if err != nil {
		fmt.Printf("error creating a new chip-8 VM: %v\n", err)
		os.Exit(1)
	}

	win, err := pixel.NewWindow()
	if err != nil {
		fmt.Printf("error creating window: %v\n", err)
		os.Exit(1)
	}

	stopAudio := make(chan struct{})
	go func() {
		if err := vm.ManageAudio(stopAudio); err != nil {
			fmt.Printf("audio error: %v\n", err)
		}
	}()
	defer close(stopAudio)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(time.Second / refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			return
		case <-ticker.C:
			if win.Closed() {
				return
			}

			keys := win.KeySnapshot()
			if err := vm.RunFrame(keys, frameBudgetUs); err != nil {
				fmt.Printf("fatal error running frame: %v\n", err)
				if debugOnFault {
					fmt.Println(vm.DebugString())
				}
				return
			}

			win.DrawGraphics(vm.Display())
		}
	}
}
