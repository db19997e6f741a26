package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/screen"
)

const (
	MemorySize   = 4096
	ProgramStart = 0x200
	StackDepth   = 16
	NumKeys      = 16
	FontAddr     = 0x000
	maxRomSize   = MemorySize - ProgramStart
)

type EMU struct {
	memory     [MemorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    screen.Framebuffer
	delayTimer uint8 //counts down at 60Hz
	soundTimer uint8 //same as above, never makes a sound
	stack      [StackDepth]uint16
	sp         uint16
	keyState   [NumKeys]bool //tells whether key is pressed or not
	rand       Random
}

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

//NewEMU returns a machine with the font loaded and pc at the program start.
//rng feeds the random opcode, nil means a time seeded source.
func NewEMU(rng Random) *EMU {
	if rng == nil {
		rng = NewRandom(0)
	}

	emu := EMU{
		pc:   ProgramStart,
		rand: rng,
	}
	emu.loadFont()
	return &emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontAddr:], FontSet[:])
}

//LoadROM copies the program image to 0x200
func (emu *EMU) LoadROM(rom []byte) error {
	if len(rom) > maxRomSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d", ErrROMTooLarge, len(rom), maxRomSize)
	}

	copy(emu.memory[ProgramStart:], rom)
	return nil
}

//Step fetches, decodes and executes one instruction. A failed step leaves the
//machine as it was before the fetch.
func (emu *EMU) Step() error {
	pc := emu.pc
	if int(pc)+1 >= MemorySize {
		return fmt.Errorf("%w: fetch at %#03x", ErrMemoryBounds, pc)
	}

	opcode := uint16(emu.memory[pc])<<8 | uint16(emu.memory[pc+1])
	emu.pc += 2

	if err := emu.execute(Decode(opcode)); err != nil {
		emu.pc = pc
		return fmt.Errorf("pc %#03x: %w", pc, err)
	}
	return nil
}

//Tick runs the 60Hz side of the machine: both timers count down to zero
func (emu *EMU) Tick() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

//SetKey latches the state of one of the 16 keys
func (emu *EMU) SetKey(key uint8, down bool) {
	emu.keyState[key&0xF] = down
}

//Frame returns a copy of the screen
func (emu *EMU) Frame() screen.Frame {
	return emu.display.Snapshot()
}

//peek returns the opcode at pc without executing it
func (emu *EMU) peek() (uint16, bool) {
	if int(emu.pc)+1 >= MemorySize {
		return 0, false
	}
	return uint16(emu.memory[emu.pc])<<8 | uint16(emu.memory[emu.pc+1]), true
}

//span checks that n bytes starting at addr are inside memory
func span(addr uint16, n int) error {
	if int(addr)+n > MemorySize {
		return fmt.Errorf("%w: %d bytes at %#03x", ErrMemoryBounds, n, addr)
	}
	return nil
}
