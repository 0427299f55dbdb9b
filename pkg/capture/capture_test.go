package capture

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

func sampleRecord(conn string, dir wire.Direction, frame uint32, at time.Time) Record {
	return Record{
		Timestamp:    at,
		ConnectionID: conn,
		Direction:    dir,
		Frame:        frame,
		Data:         []byte{0x02, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, byte(frame), 0x03},
		RemoteAddr:   "192.0.2.10:631",
	}
}

func TestEncodeDecodeRecord(t *testing.T) {
	t0 := time.Date(2024, 3, 15, 12, 30, 0, 123456789, time.UTC)
	rec := sampleRecord("conn-1", wire.DirectionRequest, 7, t0)

	data, err := EncodeRecord(rec)
	require.NoError(t, err)

	got, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, rec.ConnectionID, got.ConnectionID)
	assert.Equal(t, rec.Direction, got.Direction)
	assert.Equal(t, rec.Frame, got.Frame)
	assert.Equal(t, rec.Data, got.Data)
	assert.True(t, rec.Timestamp.Equal(got.Timestamp))
}

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ippcap")
	t0 := time.Now().UTC()

	w, err := NewFileWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionRequest, 1, t0)))
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionResponse, 2, t0.Add(time.Second))))
	require.NoError(t, w.Close())

	// Close is idempotent and writing after close fails.
	require.NoError(t, w.Close())
	assert.Error(t, w.Write(sampleRecord("conn-1", wire.DirectionRequest, 3, t0)))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), first.Frame)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), second.Frame)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ippcap")
	t0 := time.Now().UTC()

	w, err := NewFileWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionRequest, 1, t0)))
	require.NoError(t, w.Close())

	w, err = NewFileWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionResponse, 2, t0)))
	require.NoError(t, w.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var frames []uint32
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		frames = append(frames, rec.Frame)
	}
	assert.Equal(t, []uint32{1, 2}, frames)
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ippcap")
	t0 := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	w, err := NewFileWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionRequest, 1, t0)))
	require.NoError(t, w.Write(sampleRecord("conn-2", wire.DirectionRequest, 2, t0.Add(time.Minute))))
	require.NoError(t, w.Write(sampleRecord("conn-1", wire.DirectionResponse, 3, t0.Add(2*time.Minute))))
	require.NoError(t, w.Close())

	t.Run("by connection", func(t *testing.T) {
		r, err := NewFilteredReader(path, Filter{ConnectionID: "conn-1"})
		require.NoError(t, err)
		defer r.Close()

		rec, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, uint32(1), rec.Frame)

		rec, err = r.Next()
		require.NoError(t, err)
		assert.Equal(t, uint32(3), rec.Frame)

		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("by direction", func(t *testing.T) {
		dir := wire.DirectionResponse
		r, err := NewFilteredReader(path, Filter{Direction: &dir})
		require.NoError(t, err)
		defer r.Close()

		rec, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, uint32(3), rec.Frame)

		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("by time window", func(t *testing.T) {
		start := t0.Add(30 * time.Second)
		end := t0.Add(90 * time.Second)
		r, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
		require.NoError(t, err)
		defer r.Close()

		rec, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, uint32(2), rec.Frame)

		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.ippcap"))
	assert.Error(t, err)
}
