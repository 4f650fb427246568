// Package periphhw adapts periph.io GPIO pins to the hal.Pin interface.
// The embedding application must run host.Init (periph.io/x/host/v3) before
// resolving pins.
package periphhw

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Pin drives a periph.io GPIO pin. hal.Pin has no error channel, so write
// failures are logged and dropped.
type Pin struct {
	p gpio.PinIO
}

// ByName resolves a pin through the periph registry, e.g. "GPIO17" or "22".
func ByName(name string) (*Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return &Pin{p: p}, nil
}

// Wrap adapts an already-resolved periph pin.
func Wrap(p gpio.PinIO) *Pin {
	return &Pin{p: p}
}

func (p *Pin) Name() string { return p.p.Name() }

func (p *Pin) ConfigureOutput() {
	// periph configures a pin as output on the first Out call.
	if err := p.p.Out(gpio.Low); err != nil {
		log.Warn().Err(err).Str("pin", p.p.Name()).Msg("gpio configure failed")
	}
}

func (p *Pin) Write(high bool) {
	if err := p.p.Out(gpio.Level(high)); err != nil {
		log.Warn().Err(err).Str("pin", p.p.Name()).Msg("gpio write failed")
	}
}
