package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	in := Decode(0xD12F)

	assert.Equal(t, uint8(0xD), in.Family())
	assert.Equal(t, uint16(0x12F), in.Addr)
	assert.Equal(t, uint8(0x2F), in.Byte)
	assert.Equal(t, uint8(0xF), in.Nibble)
	assert.Equal(t, uint8(0x1), in.X)
	assert.Equal(t, uint8(0x2), in.Y)
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x0123, "DW $0123"},
		{0x1ABC, "JP $ABC"},
		{0x2206, "CALL $206"},
		{0x3A42, "SE VA, $42"},
		{0x4A42, "SNE VA, $42"},
		{0x5120, "SE V1, V2"},
		{0x6B0C, "LD VB, $0C"},
		{0x7101, "ADD V1, $01"},
		{0x8120, "LD V1, V2"},
		{0x8121, "OR V1, V2"},
		{0x8122, "AND V1, V2"},
		{0x8123, "XOR V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8125, "SUB V1, V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBN V1, V2"},
		{0x812E, "SHL V1"},
		{0x8129, "DW $8129"},
		{0x9120, "SNE V1, V2"},
		{0xA123, "LD I, $123"},
		{0xB300, "JP V0, $300"},
		{0xC40F, "RND V4, $0F"},
		{0xD125, "DRW V1, V2, $5"},
		{0xE19E, "SKP V1"},
		{0xE1A1, "SKNP V1"},
		{0xE100, "DW $E100"},
		{0xF407, "LD V4, DT"},
		{0xF40A, "LD V4, K"},
		{0xF415, "LD DT, V4"},
		{0xF418, "LD ST, V4"},
		{0xF41E, "ADD I, V4"},
		{0xF429, "LD F, V4"},
		{0xF433, "LD B, V4"},
		{0xF455, "LD [I], V4"},
		{0xF465, "LD V4, [I]"},
		{0xF4FF, "DW $F4FF"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Decode(test.opcode).String())
	}
}
