// Package haltest provides scripted hal implementations for headless tests:
// a hand-advanced clock, a replayed random source, and a pin that records
// every level it was driven to.
package haltest

// ScriptClock is a hal.Clock whose time only moves when the test says so.
type ScriptClock struct {
	now uint32
}

func (c *ScriptClock) NowMS() uint32 { return c.now }

// Set jumps the clock to an absolute millisecond count. Setting a value
// below the current one models counter wraparound.
func (c *ScriptClock) Set(ms uint32) { c.now = ms }

// Advance moves the clock forward, wrapping at the uint32 boundary.
func (c *ScriptClock) Advance(ms uint32) { c.now += ms }

// ScriptRand replays queued values and records the bounds it was asked for.
type ScriptRand struct {
	// Bools and Values are consumed front to back by Bool and Between.
	Bools  []bool
	Values []uint32

	// BetweenCalls records the (min, max) pair of every Between call.
	BetweenCalls [][2]uint32
}

func (r *ScriptRand) Bool() bool {
	if len(r.Bools) == 0 {
		return false
	}
	v := r.Bools[0]
	r.Bools = r.Bools[1:]
	return v
}

func (r *ScriptRand) Between(min, max uint32) uint32 {
	r.BetweenCalls = append(r.BetweenCalls, [2]uint32{min, max})
	if len(r.Values) == 0 {
		return min
	}
	v := r.Values[0]
	r.Values = r.Values[1:]
	return v
}

// SpyPin records pin activity for assertions.
type SpyPin struct {
	// Configured counts ConfigureOutput calls.
	Configured int

	// Levels is the history of levels written, oldest first.
	Levels []bool
}

func (p *SpyPin) ConfigureOutput() { p.Configured++ }

func (p *SpyPin) Write(high bool) { p.Levels = append(p.Levels, high) }

// Last returns the most recent level written, or ok=false if the pin was
// never written.
func (p *SpyPin) Last() (level, ok bool) {
	if len(p.Levels) == 0 {
		return false, false
	}
	return p.Levels[len(p.Levels)-1], true
}
