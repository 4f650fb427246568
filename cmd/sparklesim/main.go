// sparklesim exercises the LED state machines without hardware. It builds a
// small demo group (or one from a YAML config), attaches no-op pins, and
// renders each poll tick to the terminal through the preview package.
package main

import (
	"flag"
	"log"
	"time"

	sparkle "github.com/coreman2200/funtimes-sparkle"
	"github.com/coreman2200/funtimes-sparkle/internal/config"
	"github.com/coreman2200/funtimes-sparkle/preview"
)

// simPin satisfies hal.Pin; the simulator reads LED state from the state
// machines themselves, so the pin has nothing to record.
type simPin struct{}

func (simPin) ConfigureOutput() {}
func (simPin) Write(bool)       {}

func main() {
	var (
		configPath = flag.String("config", "", "optional LED set YAML; omit for the built-in demo")
		pollMS     = flag.Uint("poll-ms", config.DefaultPollMS, "update cadence")
		runFor     = flag.Duration("for", 10*time.Second, "how long to run")
	)
	flag.Parse()

	group, behaviors := buildGroup(*configPath)
	group.Init()
	for led, b := range behaviors {
		b.Start(led)
	}

	frame := preview.Terminal(group.Len())
	defer frame.Halt()

	ticker := time.NewTicker(time.Duration(*pollMS) * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(*runFor)

	for {
		select {
		case <-ticker.C:
			group.Update()
			if err := frame.Draw(group); err != nil {
				log.Fatalf("draw: %v", err)
			}
		case <-deadline:
			return
		}
	}
}

func buildGroup(configPath string) (*sparkle.Group, map[*sparkle.LED]*config.Behavior) {
	behaviors := map[*sparkle.LED]*config.Behavior{}

	if configPath == "" {
		return demoGroup(behaviors), behaviors
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	lights := make([]sparkle.Light, 0, len(cfg.LEDs))
	for _, lc := range cfg.LEDs {
		color, err := sparkle.ParseColor(lc.Color)
		if err != nil {
			log.Fatalf("led %s: %v", lc.Name, err)
		}
		led := sparkle.NewLED(sparkle.LEDOpts{
			Pin:           simPin{},
			Color:         color,
			CommonCathode: lc.CommonCathode,
			PWMCapable:    lc.PWM,
		})
		if lc.Behavior != nil {
			behaviors[led] = lc.Behavior
		}
		lights = append(lights, led)
	}
	return sparkle.NewGroup(lights...), behaviors
}

// demoGroup is a fixed show: a steady white LED, a blinking red one, a
// randomly flickering yellow one, and a green one-shot.
func demoGroup(behaviors map[*sparkle.LED]*config.Behavior) *sparkle.Group {
	newLED := func(c sparkle.Color) *sparkle.LED {
		return sparkle.NewLED(sparkle.LEDOpts{Pin: simPin{}, Color: c, CommonCathode: true})
	}

	white := newLED(sparkle.White)
	red := newLED(sparkle.Red)
	yellow := newLED(sparkle.Yellow)
	green := newLED(sparkle.Green)

	behaviors[white] = &config.Behavior{Mode: config.BehaviorOn}
	behaviors[red] = &config.Behavior{Mode: config.BehaviorBlink, OnMS: 500, OffMS: 300}
	behaviors[yellow] = &config.Behavior{
		Mode:     config.BehaviorRandom,
		MinOnMS:  50,
		MaxOnMS:  400,
		MinOffMS: 50,
		MaxOffMS: 600,
	}
	behaviors[green] = &config.Behavior{Mode: config.BehaviorTimer, DurationMS: 5000}

	return sparkle.NewGroup(white, red, yellow, green)
}
