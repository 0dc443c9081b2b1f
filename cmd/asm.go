package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chippy/internal/asmparser"
	"github.com/spf13/cobra"
)

// asmCmd assembles a CHIP-8 mnemonic source file into a raw ROM.
var asmCmd = &cobra.Command{
	Use:   "asm `path/to/src.asm` `path/to/out.ch8`",
	Short: "assemble chippy assembly source into a CHIP-8 ROM",
	Args:  cobra.ExactArgs(2),
	Run:   assembleChippy,
}

func assembleChippy(cmd *cobra.Command, args []string) {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading source: %v\n", err)
		os.Exit(1)
	}

	machineCode, err := asmparser.Assemble(src)
	if err != nil {
		fmt.Printf("error assembling source: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(args[1], machineCode, 0o644); err != nil {
		fmt.Printf("error writing rom: %v\n", err)
		os.Exit(1)
	}
}
