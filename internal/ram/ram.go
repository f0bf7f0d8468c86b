// Package ram provides a flat 64 KiB memory for the cpu package.
package ram

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

const (
	// Size is the size of the address space.
	Size = 0x10000
	// MaxImageSize is the largest image LoadImage will place in memory.
	MaxImageSize = 0x7FFF
)

// RAM represents the whole address space as a single block of RAM.
// There is no banking and no memory mapped hardware, every address is
// readable and writable.
type RAM struct {
	data [Size]uint8
	log  log.Logger

	// Fingerprint is the xxhash of the last image loaded, or 0.
	Fingerprint uint64
}

var _ cpu.Memory = (*RAM)(nil)

// NewRAM returns a new zeroed RAM. If l is nil, nothing is logged.
func NewRAM(l log.Logger) *RAM {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &RAM{log: l}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// ReadWord reads a little-endian word, the high byte wrapping around
// to address 0 when address is 0xFFFF.
func (r *RAM) ReadWord(address uint16) uint16 {
	return utils.BytesToUint16(r.data[address+1], r.data[address])
}

// WriteWord writes a little-endian word.
func (r *RAM) WriteWord(address uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	r.data[address] = low
	r.data[address+1] = high
}

// ReadBytes returns a copy of count bytes starting at address,
// wrapping at the end of the address space.
func (r *RAM) ReadBytes(address uint16, count uint16) []uint8 {
	out := make([]uint8, count)
	for i := range out {
		out[i] = r.data[address+uint16(i)]
	}
	return out
}

// CopyAt copies data into memory starting at address, wrapping at the
// end of the address space.
func (r *RAM) CopyAt(address uint16, data []byte) {
	for i, b := range data {
		r.data[address+uint16(i)] = b
	}
}

// LoadImage reads the image at path, decompressing it if its extension
// asks for it, and places it at address 0. Images larger than
// MaxImageSize are skipped without an error.
func (r *RAM) LoadImage(path string) error {
	data, err := utils.LoadFile(path)
	if err != nil {
		return fmt.Errorf("ram: load image %s: %w", path, err)
	}

	if len(data) > MaxImageSize {
		r.log.Debugf("skipping image %s: %d bytes exceeds 0x%04X", path, len(data), MaxImageSize)
		return nil
	}

	copy(r.data[:], data)
	r.Fingerprint = xxhash.Sum64(data)
	r.log.Debugf("loaded image %s: %d bytes, xxhash %016x", path, len(data), r.Fingerprint)
	return nil
}

// Reset clears the whole address space.
func (r *RAM) Reset() {
	r.data = [Size]uint8{}
	r.Fingerprint = 0
}

var _ types.Resettable = (*RAM)(nil)
var _ types.Stater = (*RAM)(nil)

// Load implements the types.Stater interface, restoring the whole
// address space.
func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data[:])
	r.Fingerprint = s.Read64()
}

// Save implements the types.Stater interface.
func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data[:])
	s.Write64(r.Fingerprint)
}
