package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequestAndResponse(t *testing.T) {
	s := NewState()
	t0 := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	req := s.RecordRequest(7, 100, t0)
	require.NotNil(t, req)
	assert.Equal(t, uint32(100), req.RequestFrame)
	assert.False(t, req.Complete())

	resp := s.RecordResponse(7, 104)
	require.NotNil(t, resp)
	assert.Same(t, req, resp)
	assert.Equal(t, uint32(104), resp.ResponseFrame)
	assert.True(t, resp.Complete())

	assert.Equal(t, 2*time.Second, resp.Elapsed(t0.Add(2*time.Second)))
	assert.Equal(t, 1, s.Len())
}

func TestRecordResponseUnmatched(t *testing.T) {
	s := NewState()

	assert.Nil(t, s.RecordResponse(42, 10))
	assert.Equal(t, 0, s.Len())
}

func TestRecordRequestDuplicateOverwrites(t *testing.T) {
	s := NewState()
	t0 := time.Now()

	first := s.RecordRequest(5, 10, t0)
	second := s.RecordRequest(5, 20, t0.Add(time.Second))

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, s.Len())

	// Responses after the duplicate attach to the newest request only.
	resp := s.RecordResponse(5, 25)
	require.NotNil(t, resp)
	assert.Same(t, second, resp)
	assert.Equal(t, uint32(20), resp.RequestFrame)
	assert.Zero(t, first.ResponseFrame)
}

func TestLookupIsReadOnly(t *testing.T) {
	s := NewState()
	t0 := time.Now()

	assert.Nil(t, s.Lookup(1))

	s.RecordRequest(1, 10, t0)
	trans := s.Lookup(1)
	require.NotNil(t, trans)
	assert.Equal(t, uint32(10), trans.RequestFrame)
	assert.Zero(t, trans.ResponseFrame)
}

func TestStateIDsAreUnique(t *testing.T) {
	a := NewState()
	b := NewState()

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestStatesAreIndependent(t *testing.T) {
	a := NewState()
	b := NewState()
	t0 := time.Now()

	a.RecordRequest(1, 10, t0)

	assert.Nil(t, b.RecordResponse(1, 11))
	assert.NotNil(t, a.RecordResponse(1, 11))
}
