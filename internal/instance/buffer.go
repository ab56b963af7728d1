package instance

import "sync"

// Buffer is the append-only output log of one instance. A single producer
// (the stdout reader) appends; any number of subscribers take snapshots at
// a byte offset and wait for the next change. Readers may lag arbitrarily
// — nothing is ever trimmed — and once Finish marks the buffer dead it
// never comes back.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	alive  bool
	notify chan struct{} // closed and replaced on every change
}

func NewBuffer() *Buffer {
	return &Buffer{alive: true, notify: make(chan struct{})}
}

// Append extends the log and wakes every waiting subscriber.
func (b *Buffer) Append(p []byte) {
	b.mu.Lock()
	b.data = append(b.data, p...)
	ch := b.notify
	b.notify = make(chan struct{})
	b.mu.Unlock()
	close(ch)
}

// Finish marks the producer done and wakes subscribers one last time.
// Idempotent.
func (b *Buffer) Finish() {
	b.mu.Lock()
	if !b.alive {
		b.mu.Unlock()
		return
	}
	b.alive = false
	ch := b.notify
	b.notify = make(chan struct{})
	b.mu.Unlock()
	close(ch)
}

// SnapshotFrom returns a copy of everything after offset, the offset at
// the end of the returned data, whether the producer is still alive, and a
// channel that closes on the next change. The delta and flags are taken
// under one lock, so a reader never observes a torn append.
func (b *Buffer) SnapshotFrom(offset int) (delta []byte, end int, alive bool, wait <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	end = len(b.data)
	if offset >= 0 && offset < end {
		delta = append([]byte(nil), b.data[offset:]...)
	}
	return delta, end, b.alive, b.notify
}

// Len returns the current end offset.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Alive reports whether the producer is still running.
func (b *Buffer) Alive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.alive
}
