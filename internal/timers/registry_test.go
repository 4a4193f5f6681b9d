package timers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInstallsSingleEntry(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	replaced, err := r.Set("42", 10, func() {})
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Equal(t, 1, r.Len())

	seconds, ok := r.Interval("42")
	require.True(t, ok)
	assert.Equal(t, 10, seconds)
}

func TestSetReplacesExistingEntry(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	_, err := r.Set("42", 10, func() {})
	require.NoError(t, err)

	replaced, err := r.Set("42", 20, func() {})
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 1, r.Len())

	seconds, ok := r.Interval("42")
	require.True(t, ok)
	assert.Equal(t, 20, seconds)
}

func TestSetKeepsEntriesPerKey(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	_, err := r.Set("42", 10, func() {})
	require.NoError(t, err)
	_, err = r.Set("43", 15, func() {})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
}

func TestUnset(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	_, err := r.Set("42", 10, func() {})
	require.NoError(t, err)

	assert.True(t, r.Unset("42"))
	assert.Equal(t, 0, r.Len())

	// a second unset reports nothing removed
	assert.False(t, r.Unset("42"))
}

func TestNegativeIntervalInstallsNothing(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	replaced, err := r.Set("42", -1, func() {})
	assert.ErrorIs(t, err, ErrNegativeInterval)
	assert.False(t, replaced)
	assert.Equal(t, 0, r.Len())
}

func TestZeroIntervalInstallsEntry(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	_, err := r.Set("42", 0, func() {})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	seconds, ok := r.Interval("42")
	require.True(t, ok)
	assert.Equal(t, 0, seconds)
}

func TestTimerFiresAndUnsetStopsIt(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	var fired atomic.Int32
	_, err := r.Set("42", 0, func() {
		fired.Add(1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)

	require.True(t, r.Unset("42"))
	count := fired.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.LessOrEqual(t, fired.Load(), count+1)
}

func TestStopAll(t *testing.T) {
	r := NewRegistry()

	_, err := r.Set("42", 10, func() {})
	require.NoError(t, err)
	_, err = r.Set("43", 10, func() {})
	require.NoError(t, err)

	r.StopAll()
	assert.Equal(t, 0, r.Len())
}
