package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanboi7/chyp8/emu/cpu"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm path/ROM",
	Short: "print the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  Disasm,
}

// chyp8 disasm 'path/to/ROM'
func Disasm(cmd *cobra.Command, args []string) error {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	return disassemble(cmd.OutOrStdout(), rom)
}

//disassemble writes one line per word, addressed as the ROM is loaded
func disassemble(w io.Writer, rom []byte) error {
	if limit := cpu.MemorySize - cpu.ProgramStart; len(rom) > limit {
		return fmt.Errorf("%w: %d bytes, can't cross %d", cpu.ErrROMTooLarge, len(rom), limit)
	}

	addr := cpu.ProgramStart
	for ; addr+1 < cpu.ProgramStart+len(rom); addr += 2 {
		i := addr - cpu.ProgramStart
		opcode := uint16(rom[i])<<8 | uint16(rom[i+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, opcode, cpu.Decode(opcode)); err != nil {
			return err
		}
	}

	//odd sized images end in a lone data byte
	if len(rom)%2 == 1 {
		last := rom[len(rom)-1]
		if _, err := fmt.Fprintf(w, "%03X  %02X    DB $%02X\n", addr, last, last); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
