package histogram

import (
	"math"
	"sync/atomic"
)

// counter is a float64 accumulator safe for concurrent use.
type counter struct {
	bits atomic.Uint64
}

func (c *counter) add(delta float64) {
	for {
		old := c.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if c.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

func (c *counter) value() float64 {
	return math.Float64frombits(c.bits.Load())
}
