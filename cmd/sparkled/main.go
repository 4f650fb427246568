// sparkled drives a configured set of LEDs on real GPIO. It loads the LED
// set from YAML, resolves pins through periph.io, starts each LED's
// configured behavior, and polls the group until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"periph.io/x/host/v3"

	sparkle "github.com/coreman2200/funtimes-sparkle"
	"github.com/coreman2200/funtimes-sparkle/internal/config"
	"github.com/coreman2200/funtimes-sparkle/periphhw"
)

var (
	configPath = "sparkle.yaml"
	verbose    = false
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the LED set YAML")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "debug logging")
}

func main() {
	pflag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("sparkled failed")
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}

	leds := make([]*sparkle.LED, 0, len(cfg.LEDs))
	lights := make([]sparkle.Light, 0, len(cfg.LEDs))
	for _, lc := range cfg.LEDs {
		pin, err := periphhw.ByName(lc.Pin)
		if err != nil {
			return fmt.Errorf("led %s: %w", lc.Name, err)
		}
		color, err := sparkle.ParseColor(lc.Color)
		if err != nil {
			return fmt.Errorf("led %s: %w", lc.Name, err)
		}
		led := sparkle.NewLED(sparkle.LEDOpts{
			Pin:           pin,
			Color:         color,
			CommonCathode: lc.CommonCathode,
			PWMCapable:    lc.PWM,
		})
		leds = append(leds, led)
		lights = append(lights, led)
		log.Debug().Str("name", lc.Name).Str("pin", pin.Name()).
			Stringer("color", color).Msg("led configured")
	}

	group := sparkle.NewGroup(lights...)
	group.Init()

	for i, lc := range cfg.LEDs {
		if lc.Behavior != nil {
			lc.Behavior.Start(leds[i])
		}
	}

	log.Info().Int("leds", group.Len()).Uint32("poll_ms", cfg.PollMS).
		Msg("sparkled running")

	ticker := time.NewTicker(time.Duration(cfg.PollMS) * time.Millisecond)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			group.Update()
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			group.AllOff()
			return nil
		}
	}
}
