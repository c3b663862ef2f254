package watcher

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DigestGate remembers the digest of the last accepted snapshot so byte-identical
// rewrites by the host skip parsing.
type DigestGate struct {
	mu   sync.Mutex
	last uint64
	seen bool
}

// Accept reports whether data differs from the last accepted content and, if so,
// records it.
func (g *DigestGate) Accept(data []byte) bool {
	sum := xxhash.Sum64(data)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seen && sum == g.last {
		return false
	}
	g.last = sum
	g.seen = true
	return true
}

// Forget clears the recorded digest so the next snapshot is always accepted.
func (g *DigestGate) Forget() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seen = false
}
