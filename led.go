// Package sparkle drives a set of LEDs attached to digital output pins,
// giving each LED an independent timed display behavior (steady on/off,
// periodic blink, randomized blink, one-shot timed on) and letting a group
// of LEDs be manipulated collectively by color.
//
// The library owns no loop of its own: the embedding application configures
// LEDs, optionally groups them, starts whichever behaviors it wants, and
// calls Update once per polling tick from its main loop. All hardware access
// goes through the hal package, so the state machines run identically
// against real GPIO (package periphhw) and against scripted test doubles
// (package hal/haltest).
package sparkle

import "github.com/coreman2200/funtimes-sparkle/hal"

// LEDOpts carries the construction parameters of an LED. Pin, Color,
// CommonCathode and PWMCapable are immutable after NewLED. Clock and Rand
// default to the system implementations when nil.
type LEDOpts struct {
	Pin   hal.Pin
	Color Color

	// CommonCathode selects the electrical polarity: true means driving
	// the pin high turns the LED on, false (common anode) means driving
	// it low does.
	CommonCathode bool

	// PWMCapable marks the pin as PWM-capable. Reserved for ModeFade,
	// which is not implemented.
	PWMCapable bool

	Clock hal.Clock
	Rand  hal.Rand
}

// LED is a single LED's state machine: polarity handling, current on/off
// state, active display mode, and the mode's timing parameters. Methods
// never return errors; malformed Set calls and ungated Start calls are
// silent no-ops, so callers may invoke them speculatively.
//
// An LED is not safe for concurrent use; the library assumes one logical
// thread of control (the embedding main loop).
type LED struct {
	pin           hal.Pin
	color         Color
	commonCathode bool
	pwmCapable    bool

	clock hal.Clock
	rand  hal.Rand

	on             bool
	mode           Mode
	lastTransition uint32

	// Committed parameters, milliseconds. Zero means never committed.
	blinkOn                uint32
	blinkOff               uint32
	timer                  uint32
	randMinOff, randMaxOff uint32
	randMinOn, randMaxOn   uint32

	// Currently sampled durations for the in-progress random-blink phase.
	randOff uint32
	randOn  uint32
}

// NewLED builds an LED in ModeDisabled with all durations uncommitted.
// Call Init before any other pin-affecting operation.
func NewLED(o LEDOpts) *LED {
	if o.Clock == nil {
		o.Clock = hal.SystemClock()
	}
	if o.Rand == nil {
		o.Rand = hal.SystemRand()
	}
	return &LED{
		pin:           o.Pin,
		color:         o.Color,
		commonCathode: o.CommonCathode,
		pwmCapable:    o.PWMCapable,
		clock:         o.Clock,
		rand:          o.Rand,
		mode:          ModeDisabled,
	}
}

// Init configures the pin as a digital output and forces the LED off,
// leaving it in ModeManual. Call exactly once before anything else; the
// effect of other operations before Init matches raw pin-write semantics
// and is the caller's responsibility.
func (l *LED) Init() {
	l.pin.ConfigureOutput()
	l.TurnOff()
}

// driveOn and driveOff flip the electrical state without touching the mode.

func (l *LED) driveOn() {
	l.pin.Write(l.commonCathode)
	l.on = true
}

func (l *LED) driveOff() {
	l.pin.Write(!l.commonCathode)
	l.on = false
}

// TurnOn drives the LED on and forces ModeManual, overriding whatever
// automatic behavior was running.
func (l *LED) TurnOn() {
	l.driveOn()
	l.mode = ModeManual
}

// TurnOff drives the LED off and forces ModeManual, overriding whatever
// automatic behavior was running.
func (l *LED) TurnOff() {
	l.driveOff()
	l.mode = ModeManual
}

// Color returns the LED's static color classification.
func (l *LED) Color() Color { return l.color }

// IsOn reports the last commanded electrical state.
func (l *LED) IsOn() bool { return l.on }

// Mode returns the active display mode.
func (l *LED) Mode() Mode { return l.mode }

// SetBlink commits the blink durations, in milliseconds. It does not switch
// the mode; call StartBlink for that. If either duration is zero both
// settings are ignored.
func (l *LED) SetBlink(onMS, offMS uint32) {
	if onMS > 0 && offMS > 0 {
		l.blinkOn = onMS
		l.blinkOff = offMS
	}
}

// StartBlink turns the LED on and begins blinking with the durations from
// SetBlink. Without a prior SetBlink it does nothing.
func (l *LED) StartBlink() {
	if l.blinkOn == 0 || l.blinkOff == 0 {
		return
	}
	l.driveOn()
	l.lastTransition = l.clock.NowMS()
	l.mode = ModeBlink
}

// SetRandomBlink commits the random-blink duration ranges, in milliseconds.
// It does not switch the mode; call StartRandomBlink for that. If any
// argument is zero all settings are ignored.
func (l *LED) SetRandomBlink(minOffMS, maxOffMS, minOnMS, maxOnMS uint32) {
	if minOffMS > 0 && maxOffMS > 0 && minOnMS > 0 && maxOnMS > 0 {
		l.randMinOff = minOffMS
		l.randMaxOff = maxOffMS
		l.randMinOn = minOnMS
		l.randMaxOn = maxOnMS
	}
}

// StartRandomBlink begins random blinking with the ranges from
// SetRandomBlink. The starting phase is a coin flip rather than always-on,
// so a set of random-blink LEDs started together does not open in lockstep.
// Without a prior SetRandomBlink it does nothing.
func (l *LED) StartRandomBlink() {
	if l.randMinOff == 0 || l.randMaxOff == 0 || l.randMinOn == 0 || l.randMaxOn == 0 {
		return
	}
	if l.rand.Bool() {
		l.driveOn()
		l.randOn = l.rand.Between(l.randMinOn, l.randMaxOn)
	} else {
		l.driveOff()
		l.randOff = l.rand.Between(l.randMinOff, l.randMaxOff)
	}
	l.lastTransition = l.clock.NowMS()
	l.mode = ModeBlinkRandom
}

// SetTimer commits the one-shot duration, in milliseconds. It does not
// switch the mode; call StartTimer for that. A zero duration is ignored.
func (l *LED) SetTimer(durationMS uint32) {
	if durationMS > 0 {
		l.timer = durationMS
	}
}

// StartTimer turns the LED on for the duration from SetTimer, after which
// Update turns it off and returns the mode to Manual. Without a prior
// SetTimer it does nothing.
func (l *LED) StartTimer() {
	if l.timer == 0 {
		return
	}
	l.driveOn()
	l.lastTransition = l.clock.NowMS()
	l.mode = ModeTimed
}

// Update advances the active mode's state machine. Call it once per polling
// tick, at a cadence fine enough to resolve the shortest configured
// duration. Elapsed time is computed with wrap-safe subtraction, so the
// state machines stay correct across the clock's uint32 wraparound.
func (l *LED) Update() {
	switch l.mode {
	case ModeBlink:
		now := l.clock.NowMS()
		if l.on {
			if now-l.lastTransition >= l.blinkOn {
				l.driveOff()
				l.lastTransition = now
			}
		} else {
			if now-l.lastTransition >= l.blinkOff {
				l.driveOn()
				l.lastTransition = now
			}
		}

	case ModeBlinkRandom:
		// Phase expiry checks against the sampled duration, not the
		// configured bounds. The duration of the phase being entered is
		// resampled on each flip.
		now := l.clock.NowMS()
		if l.on {
			if now-l.lastTransition >= l.randOn {
				l.driveOff()
				l.lastTransition = now
				l.randOff = l.rand.Between(l.randMinOff, l.randMaxOff)
			}
		} else {
			if now-l.lastTransition >= l.randOff {
				l.driveOn()
				l.lastTransition = now
				l.randOn = l.rand.Between(l.randMinOn, l.randMaxOn)
			}
		}

	case ModeTimed:
		if l.on && l.clock.NowMS()-l.lastTransition >= l.timer {
			l.driveOff()
			l.mode = ModeManual
		}

	case ModeFade:
		// Needs PWM support in hal; nothing to do yet even when
		// pwmCapable is set.

	case ModeManual, ModeDisabled:
	}
}
