package cpu

import "fmt"

//execute runs one decoded instruction. pc already points past it.
func (emu *EMU) execute(in Instruction) error {
	x, y := in.X, in.Y

	switch in.Family() {
	case 0x0:
		switch in.Opcode {
		case 0x00E0:
			emu.display.Clear()
		case 0x00EE:
			if emu.sp == 0 {
				return ErrStackUnderflow
			}
			emu.sp--
			emu.pc = emu.stack[emu.sp]
		default:
			return emu.opCodeError(in.Opcode)
		}
	case 0x1:
		emu.pc = in.Addr
	case 0x2:
		if emu.sp == StackDepth {
			return fmt.Errorf("%w: call to %#03x", ErrStackOverflow, in.Addr)
		}
		emu.stack[emu.sp] = emu.pc
		emu.sp++
		emu.pc = in.Addr
	case 0x3:
		if emu.V[x] == in.Byte {
			emu.pc += 2
		}
	case 0x4:
		if emu.V[x] != in.Byte {
			emu.pc += 2
		}
	case 0x5:
		if emu.V[x] == emu.V[y] {
			emu.pc += 2
		}
	case 0x6:
		emu.V[x] = in.Byte
	case 0x7:
		emu.V[x] += in.Byte
	case 0x8:
		emu.arithmetic(in)
	case 0x9:
		if emu.V[x] != emu.V[y] {
			emu.pc += 2
		}
	case 0xA:
		emu.I = in.Addr
	case 0xB:
		emu.pc = uint16(emu.V[0]) + in.Addr
	case 0xC:
		emu.V[x] = emu.rand.Byte() & in.Byte
	case 0xD:
		return emu.draw(in)
	case 0xE:
		switch in.Byte {
		case 0x9E:
			if emu.keyState[emu.V[x]&0xF] {
				emu.pc += 2
			}
		case 0xA1:
			if !emu.keyState[emu.V[x]&0xF] {
				emu.pc += 2
			}
		}
	case 0xF:
		return emu.misc(in)
	}
	return nil
}

//arithmetic handles the 8XYN family. VF is written after VX so the flag
//survives when X is F.
func (emu *EMU) arithmetic(in Instruction) {
	x, y := in.X, in.Y

	switch in.Nibble {
	case 0x0:
		emu.V[x] = emu.V[y]
	case 0x1:
		emu.V[x] |= emu.V[y]
	case 0x2:
		emu.V[x] &= emu.V[y]
	case 0x3:
		emu.V[x] ^= emu.V[y]
	case 0x4:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[0xF] = flag(sum > 0xFF)
	case 0x5:
		noBorrow := emu.V[x] >= emu.V[y]
		emu.V[x] -= emu.V[y]
		emu.V[0xF] = flag(noBorrow)
	case 0x6:
		lsb := emu.V[x] & 0x1
		emu.V[x] >>= 1
		emu.V[0xF] = lsb
	case 0x7:
		noBorrow := emu.V[y] >= emu.V[x]
		emu.V[x] = emu.V[y] - emu.V[x]
		emu.V[0xF] = flag(noBorrow)
	case 0xE:
		msb := emu.V[x]&0x80 != 0
		emu.V[x] <<= 1
		emu.V[0xF] = flag(msb)
	}
}

//draw handles DXYN
func (emu *EMU) draw(in Instruction) error {
	n := int(in.Nibble)
	if err := span(emu.I, n); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	sprite := emu.memory[emu.I : int(emu.I)+n]
	collision := emu.display.Draw(int(emu.V[in.X]), int(emu.V[in.Y]), sprite)
	emu.V[0xF] = flag(collision)
	return nil
}

//misc handles the FXKK family
func (emu *EMU) misc(in Instruction) error {
	x := in.X

	switch in.Byte {
	case 0x07:
		emu.V[x] = emu.delayTimer
	case 0x0A:
		key, ok := emu.heldKey()
		if !ok {
			//run this instruction again until a key is down
			emu.pc -= 2
			return nil
		}
		emu.V[x] = key
	case 0x15:
		emu.delayTimer = emu.V[x]
	case 0x18:
		emu.soundTimer = emu.V[x]
	case 0x1E:
		emu.I += uint16(emu.V[x])
		emu.V[0xF] = flag(emu.I > 0xFFF)
	case 0x29:
		emu.I = FontAddr + uint16(emu.V[x])*5
	case 0x33:
		if err := span(emu.I, 3); err != nil {
			return fmt.Errorf("bcd: %w", err)
		}
		v := emu.V[x]
		emu.memory[emu.I] = v / 100
		emu.memory[emu.I+1] = (v / 10) % 10
		emu.memory[emu.I+2] = v % 10
	case 0x55:
		if err := span(emu.I, int(x)+1); err != nil {
			return fmt.Errorf("register store: %w", err)
		}
		copy(emu.memory[emu.I:], emu.V[:x+1])
	case 0x65:
		if err := span(emu.I, int(x)+1); err != nil {
			return fmt.Errorf("register load: %w", err)
		}
		copy(emu.V[:x+1], emu.memory[emu.I:])
	}
	return nil
}

func (emu *EMU) heldKey() (uint8, bool) {
	for i, down := range emu.keyState {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

func (emu *EMU) opCodeError(opcode uint16) error {
	return fmt.Errorf("%w: %04X", ErrUnknownOpcode, opcode)
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
