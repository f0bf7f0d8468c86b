package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
)

var (
	// ErrInvalidState is returned when a state stream is truncated or
	// does not carry the expected header.
	ErrInvalidState = errors.New("types: invalid state")
	// ErrChecksumMismatch is returned when the checksum stored in a
	// compressed state does not match its payload.
	ErrChecksumMismatch = errors.New("types: state checksum mismatch")
)

// stateMagic prefixes every compressed state.
var stateMagic = [4]byte{'L', 'R', '3', '5'}

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State is a little-endian byte stream used to snapshot the CPU
// and its memory between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first short read
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 64),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position, allowing the state
// to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = binary.LittleEndian.AppendUint16(s.raw, value)
}

func (s *State) Write64(value uint64) {
	s.raw = binary.LittleEndian.AppendUint64(s.raw, value)
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take returns the next n bytes, or nil once the stream is exhausted.
// A short read is recorded and reported by Err.
func (s *State) take(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInvalidState, n, s.readPosition, len(s.raw))
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	if b := s.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *State) Read16() uint16 {
	if b := s.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (s *State) Read64() uint64 {
	if b := s.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if b := s.take(len(p)); b != nil {
		copy(p, b)
	}
}

// Err returns the first short read encountered while loading, if any.
func (s *State) Err() error {
	return s.err
}

// Bytes returns the raw, uncompressed state.
func (s *State) Bytes() []byte {
	return s.raw
}

// Checksum returns the xxhash digest of the raw state.
func (s *State) Checksum() uint64 {
	return xxhash.Sum64(s.raw)
}

// Compress returns the state as magic | checksum | brotli(raw).
func (s *State) Compress() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(stateMagic[:])

	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], s.Checksum())
	buf.Write(sum[:])

	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(s.raw); err != nil {
		return nil, fmt.Errorf("compress state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress state: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress, verifying the stored checksum.
func Decompress(data []byte) (*State, error) {
	if len(data) < len(stateMagic)+8 || !bytes.Equal(data[:len(stateMagic)], stateMagic[:]) {
		return nil, ErrInvalidState
	}
	want := binary.LittleEndian.Uint64(data[len(stateMagic):])

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data[len(stateMagic)+8:])))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	s := StateFromBytes(raw)
	if got := s.Checksum(); got != want {
		return nil, fmt.Errorf("%w: want %016x, got %016x", ErrChecksumMismatch, want, got)
	}

	return s, nil
}

// SaveToFile writes the compressed state to filename.
func (s *State) SaveToFile(filename string) error {
	data, err := s.Compress()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads a state previously written by SaveToFile.
func LoadFromFile(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decompress(data)
}
