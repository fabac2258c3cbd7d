package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(i int) Entry {
	return Entry{Method: "GET", Path: fmt.Sprintf("/api/p%d", i), Status: 200}
}

func TestLog_RecordAndSnapshot(t *testing.T) {
	l := NewLog(5)
	assert.Equal(t, 0, l.Count())
	assert.Equal(t, 5, l.Capacity())

	for i := 0; i < 3; i++ {
		l.Record(entry(i))
	}

	require.Equal(t, 3, l.Count())
	snapshot := l.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "/api/p0", snapshot[0].Path)
	assert.Equal(t, "/api/p2", snapshot[2].Path)
}

func TestLog_OverwritesOldestWhenFull(t *testing.T) {
	l := NewLog(3)

	for i := 0; i < 5; i++ {
		l.Record(entry(i))
	}

	assert.Equal(t, 3, l.Count())
	snapshot := l.Snapshot()
	require.Len(t, snapshot, 3)
	// oldest two were overwritten
	assert.Equal(t, "/api/p2", snapshot[0].Path)
	assert.Equal(t, "/api/p3", snapshot[1].Path)
	assert.Equal(t, "/api/p4", snapshot[2].Path)
}

func TestLog_Clear(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 4; i++ {
		l.Record(entry(i))
	}

	l.Clear()
	assert.Equal(t, 0, l.Count())
	assert.Empty(t, l.Snapshot())

	l.Record(entry(9))
	snapshot := l.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "/api/p9", snapshot[0].Path)
}

func TestLog_MinimumSize(t *testing.T) {
	l := NewLog(0)
	assert.Equal(t, 1, l.Capacity())

	l.Record(entry(1))
	l.Record(entry(2))
	snapshot := l.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "/api/p2", snapshot[0].Path)
}
