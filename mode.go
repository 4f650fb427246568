package sparkle

import "fmt"

// Mode is the active display behavior of an LED.
type Mode uint8

const (
	// ModeDisabled is the state before Init; the pin has never been driven.
	ModeDisabled Mode = iota
	// ModeManual is the resting state: the LED holds whatever level it was
	// last commanded to.
	ModeManual
	// ModeTimed is a one-shot: on for a set duration, then back to Manual.
	ModeTimed
	// ModeBlink toggles with fixed on and off durations.
	ModeBlink
	// ModeBlinkRandom toggles with durations resampled each phase from
	// configured ranges.
	ModeBlinkRandom
	// ModeFade is reserved for PWM-capable pins. Not implemented.
	ModeFade
)

var modeNames = [...]string{
	ModeDisabled:    "disabled",
	ModeManual:      "manual",
	ModeTimed:       "timed",
	ModeBlink:       "blink",
	ModeBlinkRandom: "blink_random",
	ModeFade:        "fade",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}
