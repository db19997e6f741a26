package cpu

import "fmt"

//Instruction is one decoded 16 bit opcode with all of its operand fields
//pulled out. Which fields matter depends on the family.
type Instruction struct {
	Opcode uint16
	Addr   uint16 // nnn, low 12 bits
	Byte   uint8  // kk, low 8 bits
	Nibble uint8  // n, low 4 bits
	X      uint8  // bits 8-11
	Y      uint8  // bits 4-7
}

//Decode splits an opcode into its operand fields
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Addr:   opcode & 0x0FFF,
		Byte:   uint8(opcode & 0x00FF),
		Nibble: uint8(opcode & 0x000F),
		X:      uint8((opcode & 0x0F00) >> 8),
		Y:      uint8((opcode & 0x00F0) >> 4),
	}
}

//Family is the top nibble that selects the instruction group
func (in Instruction) Family() uint8 {
	return uint8(in.Opcode >> 12)
}

//String returns the assembler mnemonic. Words that do not decode to an
//instruction come out as a DW data directive.
func (in Instruction) String() string {
	switch in.Family() {
	case 0x0:
		switch in.Opcode {
		case 0x00E0:
			return "CLS"
		case 0x00EE:
			return "RET"
		}
	case 0x1:
		return fmt.Sprintf("JP $%03X", in.Addr)
	case 0x2:
		return fmt.Sprintf("CALL $%03X", in.Addr)
	case 0x3:
		return fmt.Sprintf("SE V%X, $%02X", in.X, in.Byte)
	case 0x4:
		return fmt.Sprintf("SNE V%X, $%02X", in.X, in.Byte)
	case 0x5:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case 0x6:
		return fmt.Sprintf("LD V%X, $%02X", in.X, in.Byte)
	case 0x7:
		return fmt.Sprintf("ADD V%X, $%02X", in.X, in.Byte)
	case 0x8:
		if name, ok := aluNames[in.Nibble]; ok {
			if in.Nibble == 0x6 || in.Nibble == 0xE {
				return fmt.Sprintf("%s V%X", name, in.X)
			}
			return fmt.Sprintf("%s V%X, V%X", name, in.X, in.Y)
		}
	case 0x9:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case 0xA:
		return fmt.Sprintf("LD I, $%03X", in.Addr)
	case 0xB:
		return fmt.Sprintf("JP V0, $%03X", in.Addr)
	case 0xC:
		return fmt.Sprintf("RND V%X, $%02X", in.X, in.Byte)
	case 0xD:
		return fmt.Sprintf("DRW V%X, V%X, $%X", in.X, in.Y, in.Nibble)
	case 0xE:
		switch in.Byte {
		case 0x9E:
			return fmt.Sprintf("SKP V%X", in.X)
		case 0xA1:
			return fmt.Sprintf("SKNP V%X", in.X)
		}
	case 0xF:
		if format, ok := miscFormats[in.Byte]; ok {
			return fmt.Sprintf(format, in.X)
		}
	}
	return fmt.Sprintf("DW $%04X", in.Opcode)
}

var aluNames = map[uint8]string{
	0x0: "LD",
	0x1: "OR",
	0x2: "AND",
	0x3: "XOR",
	0x4: "ADD",
	0x5: "SUB",
	0x6: "SHR",
	0x7: "SUBN",
	0xE: "SHL",
}

var miscFormats = map[uint8]string{
	0x07: "LD V%X, DT",
	0x0A: "LD V%X, K",
	0x15: "LD DT, V%X",
	0x18: "LD ST, V%X",
	0x1E: "ADD I, V%X",
	0x29: "LD F, V%X",
	0x33: "LD B, V%X",
	0x55: "LD [I], V%X",
	0x65: "LD V%X, [I]",
}
