// Package config loads the YAML description of an LED set: which pins the
// LEDs sit on, their colors and wiring polarity, and the behavior each one
// should start with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sparkle "github.com/coreman2200/funtimes-sparkle"
)

// Behavior names the display behaviors a config can start on an LED.
const (
	BehaviorOn     = "on"
	BehaviorOff    = "off"
	BehaviorBlink  = "blink"
	BehaviorRandom = "random"
	BehaviorTimer  = "timer"
)

type LED struct {
	Name          string `yaml:"name,omitempty"`
	Pin           string `yaml:"pin"`
	Color         string `yaml:"color"`
	CommonCathode bool   `yaml:"common_cathode"`
	PWM           bool   `yaml:"pwm,omitempty"`

	Behavior *Behavior `yaml:"behavior,omitempty"`
}

// Behavior describes the startup behavior of one LED. Durations are in
// milliseconds; which fields matter depends on Mode.
type Behavior struct {
	Mode string `yaml:"mode"`

	OnMS  uint32 `yaml:"on_ms,omitempty"`
	OffMS uint32 `yaml:"off_ms,omitempty"`

	MinOnMS  uint32 `yaml:"min_on_ms,omitempty"`
	MaxOnMS  uint32 `yaml:"max_on_ms,omitempty"`
	MinOffMS uint32 `yaml:"min_off_ms,omitempty"`
	MaxOffMS uint32 `yaml:"max_off_ms,omitempty"`

	DurationMS uint32 `yaml:"duration_ms,omitempty"`
}

type Config struct {
	// PollMS is the update cadence of the main loop. It must resolve the
	// shortest configured duration.
	PollMS uint32 `yaml:"poll_ms,omitempty"`

	LEDs []LED `yaml:"leds"`
}

const DefaultPollMS = 10

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.PollMS == 0 {
		c.PollMS = DefaultPollMS
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the config for problems Load cannot see: unknown colors,
// missing pins, and behaviors whose required durations are absent. The
// library itself would silently ignore a zero duration; surfacing it here
// keeps a typo in the YAML from turning into a dark LED with no explanation.
func (c *Config) Validate() error {
	if len(c.LEDs) == 0 {
		return fmt.Errorf("config has no leds")
	}
	for i, l := range c.LEDs {
		if l.Pin == "" {
			return fmt.Errorf("led %d (%s): no pin", i, l.Name)
		}
		if _, err := sparkle.ParseColor(l.Color); err != nil {
			return fmt.Errorf("led %d (%s): %w", i, l.Name, err)
		}
		if l.Behavior == nil {
			continue
		}
		b := l.Behavior
		switch b.Mode {
		case BehaviorOn, BehaviorOff:
		case BehaviorBlink:
			if b.OnMS == 0 || b.OffMS == 0 {
				return fmt.Errorf("led %d (%s): blink needs on_ms and off_ms", i, l.Name)
			}
		case BehaviorRandom:
			if b.MinOnMS == 0 || b.MaxOnMS == 0 || b.MinOffMS == 0 || b.MaxOffMS == 0 {
				return fmt.Errorf("led %d (%s): random needs all four min/max durations", i, l.Name)
			}
		case BehaviorTimer:
			if b.DurationMS == 0 {
				return fmt.Errorf("led %d (%s): timer needs duration_ms", i, l.Name)
			}
		default:
			return fmt.Errorf("led %d (%s): unknown behavior mode %q", i, l.Name, b.Mode)
		}
	}
	return nil
}

// Start applies the behavior to an already-initialized LED.
func (b *Behavior) Start(l *sparkle.LED) {
	switch b.Mode {
	case BehaviorOn:
		l.TurnOn()
	case BehaviorOff:
		l.TurnOff()
	case BehaviorBlink:
		l.SetBlink(b.OnMS, b.OffMS)
		l.StartBlink()
	case BehaviorRandom:
		l.SetRandomBlink(b.MinOffMS, b.MaxOffMS, b.MinOnMS, b.MaxOnMS)
		l.StartRandomBlink()
	case BehaviorTimer:
		l.SetTimer(b.DurationMS)
		l.StartTimer()
	}
}
