package history

import (
	"sync"
	"time"
)

// Entry records one request the client made. The log holds metadata only,
// never response bodies; it is a debug trace, not a cache.
type Entry struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	Err       string
	Latency   time.Duration
	At        time.Time
}

// Log is a circular buffer of the most recent request entries.
// When full, the oldest entry is overwritten.
type Log struct {
	buffer []Entry
	size   int
	head   int
	tail   int
	count  int
	mu     sync.RWMutex
	isFull bool
}

// NewLog creates a request log holding at most size entries.
func NewLog(size int) *Log {
	if size < 1 {
		size = 1
	}
	return &Log{
		buffer: make([]Entry, size),
		size:   size,
	}
}

// Record appends an entry, overwriting the oldest when full.
func (l *Log) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buffer[l.head] = e
	l.head = (l.head + 1) % l.size

	if l.isFull {
		l.tail = (l.tail + 1) % l.size
	} else {
		l.count++
		if l.head == l.tail {
			l.isFull = true
		}
	}
}

// Count returns the number of entries currently held.
func (l *Log) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// Capacity returns the maximum number of entries the log holds.
func (l *Log) Capacity() int {
	return l.size
}

// Snapshot returns the held entries ordered oldest first.
func (l *Log) Snapshot() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, 0, l.count)
	for i := 0; i < l.count; i++ {
		entries = append(entries, l.buffer[(l.tail+i)%l.size])
	}
	return entries
}

// Clear discards all entries.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.head = 0
	l.tail = 0
	l.count = 0
	l.isFull = false
}
