package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock is the Lamport clock stamping replicated ops. Each session gets
// a random site ID so concurrent moves from presenter and (future)
// co-presenters order deterministically.
type Clock struct {
	site    string
	counter uint64
}

func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

// Site returns this session's site ID.
func (c *Clock) Site() string {
	return c.site
}

// Tick advances the clock and returns the new timestamp.
func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

// Witness folds a remote timestamp into the clock so later local ticks
// order after everything already seen.
func (c *Clock) Witness(remote uint64) {
	for {
		cur := atomic.LoadUint64(&c.counter)
		if remote <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&c.counter, cur, remote) {
			return
		}
	}
}

// Before reports whether op (ts, site) orders before (otherTS, otherSite):
// Lamport timestamp first, site ID as the tiebreak.
func Before(ts uint64, site string, otherTS uint64, otherSite string) bool {
	if ts != otherTS {
		return ts < otherTS
	}
	return site < otherSite
}
