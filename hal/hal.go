// Package hal holds the small hardware abstraction the sparkle library is
// built against: a digital output pin, a wrapping millisecond clock, and a
// bounded random source. Real hardware lives behind these interfaces (see
// package periphhw); tests substitute scripted implementations from
// hal/haltest.
package hal

import (
	"math/rand/v2"
	"time"
)

// Pin is a single digital output. Implementations absorb hardware errors
// (logging them if they care); nothing above this interface can act on a
// failed write anyway.
type Pin interface {
	// ConfigureOutput sets the pin up as a digital output. Call once,
	// before the first Write.
	ConfigureOutput()

	// Write drives the pin high (true) or low (false).
	Write(high bool)
}

// Clock is a monotonically increasing millisecond counter. The counter is
// fixed-width and wraps at the uint32 boundary; consumers must compare
// elapsed time with wrap-safe subtraction.
type Clock interface {
	NowMS() uint32
}

// Rand is a bounded pseudo-random source.
type Rand interface {
	// Between returns a uniform value in [min, max).
	Between(min, max uint32) uint32

	// Bool returns a uniform coin flip.
	Bool() bool
}

var systemClock = &sysClock{start: time.Now()}

// SystemClock returns the process-wide wall clock, counting milliseconds
// since process start truncated to uint32.
func SystemClock() Clock { return systemClock }

type sysClock struct {
	start time.Time
}

func (c *sysClock) NowMS() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// SystemRand returns a Rand backed by math/rand/v2.
func SystemRand() Rand { return sysRand{} }

type sysRand struct{}

func (sysRand) Between(min, max uint32) uint32 {
	if max <= min {
		return min
	}
	return min + rand.Uint32N(max-min)
}

func (sysRand) Bool() bool {
	return rand.Uint32N(2) == 1
}
