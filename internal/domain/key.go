package domain

import (
	"encoding/binary"
	"encoding/hex"
)

const packedWords = (MaxDimension*MaxDimension*2 + 63) / 64

// Packed is a fixed-width encoding of a board: two bits per cell plus the
// dimensions. Distinct boards always produce distinct values, so it is safe as
// a map key.
type Packed struct {
	Rows  uint8
	Cols  uint8
	Words [packedWords]uint64
}

func (b *Board) Pack() Packed {
	p := Packed{Rows: uint8(b.rows), Cols: uint8(b.cols)}
	for i, cell := range b.cells {
		bit := i * 2
		p.Words[bit/64] |= uint64(cell) << (bit % 64)
	}
	return p
}

// String renders the packed board as "<rows>x<cols>:<hex>" for external keys.
func (p Packed) String() string {
	buf := make([]byte, 2+8*packedWords)
	buf[0], buf[1] = p.Rows, p.Cols
	for i, w := range p.Words {
		binary.BigEndian.PutUint64(buf[2+8*i:], w)
	}
	return hex.EncodeToString(buf)
}
