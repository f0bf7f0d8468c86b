package ram

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/lr35902/internal/types"
)

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM(nil)
	r.Write(0xFFFF, 0x42)
	assert.Equal(t, uint8(0x42), r.Read(0xFFFF))

	// the bus is addressed, so it must not pass for a byte stream
	_, isByteReader := interface{}(r).(io.ByteReader)
	_, isByteWriter := interface{}(r).(io.ByteWriter)
	assert.False(t, isByteReader)
	assert.False(t, isByteWriter)
}

func TestRAM_Words(t *testing.T) {
	r := NewRAM(nil)
	r.WriteWord(0xC000, 0xBEEF)
	assert.Equal(t, uint8(0xEF), r.Read(0xC000))
	assert.Equal(t, uint8(0xBE), r.Read(0xC001))
	assert.Equal(t, uint16(0xBEEF), r.ReadWord(0xC000))

	// high byte wraps to 0x0000
	r.WriteWord(0xFFFF, 0x1234)
	assert.Equal(t, uint8(0x34), r.Read(0xFFFF))
	assert.Equal(t, uint8(0x12), r.Read(0x0000))
	assert.Equal(t, uint16(0x1234), r.ReadWord(0xFFFF))
}

func TestRAM_ReadBytes(t *testing.T) {
	r := NewRAM(nil)
	r.CopyAt(0xFFFE, []byte{1, 2, 3, 4})
	assert.Equal(t, []uint8{1, 2, 3, 4}, r.ReadBytes(0xFFFE, 4))
	assert.Empty(t, r.ReadBytes(0, 0))
}

func TestRAM_LoadImage(t *testing.T) {
	dir := t.TempDir()

	t.Run("small image", func(t *testing.T) {
		image := []byte{0x00, 0xC3, 0x50, 0x01}
		path := filepath.Join(dir, "small.gb")
		require.NoError(t, os.WriteFile(path, image, 0644))

		r := NewRAM(nil)
		require.NoError(t, r.LoadImage(path))
		assert.Equal(t, image, r.ReadBytes(0, uint16(len(image))))
		assert.Equal(t, xxhash.Sum64(image), r.Fingerprint)
	})
	t.Run("image at size limit", func(t *testing.T) {
		image := make([]byte, MaxImageSize)
		image[MaxImageSize-1] = 0xAA
		path := filepath.Join(dir, "limit.gb")
		require.NoError(t, os.WriteFile(path, image, 0644))

		r := NewRAM(nil)
		require.NoError(t, r.LoadImage(path))
		assert.Equal(t, uint8(0xAA), r.Read(MaxImageSize-1))
	})
	t.Run("oversized image is skipped", func(t *testing.T) {
		image := make([]byte, MaxImageSize+1)
		for i := range image {
			image[i] = 0xFF
		}
		path := filepath.Join(dir, "large.gb")
		require.NoError(t, os.WriteFile(path, image, 0644))

		r := NewRAM(nil)
		require.NoError(t, r.LoadImage(path))
		assert.Equal(t, uint8(0), r.Read(0))
		assert.Zero(t, r.Fingerprint)
	})
	t.Run("missing file", func(t *testing.T) {
		r := NewRAM(nil)
		assert.Error(t, r.LoadImage(filepath.Join(dir, "missing.gb")))
	})
}

func TestRAM_State(t *testing.T) {
	r := NewRAM(nil)
	r.CopyAt(0x8000, []byte{0xDE, 0xAD})
	r.Fingerprint = 42

	s := types.NewState()
	r.Save(s)

	restored := NewRAM(nil)
	restored.Load(s)
	require.NoError(t, s.Err())
	assert.Equal(t, r.data, restored.data)
	assert.Equal(t, uint64(42), restored.Fingerprint)

	restored.Reset()
	assert.Equal(t, uint8(0), restored.Read(0x8000))
}
