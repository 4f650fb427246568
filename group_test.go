package sparkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparkle "github.com/coreman2200/funtimes-sparkle"
	"github.com/coreman2200/funtimes-sparkle/hal/haltest"
)

type groupFixture struct {
	group *sparkle.Group
	leds  []*sparkle.LED
	pins  []*haltest.SpyPin
}

func newGroupFixture(colors ...sparkle.Color) *groupFixture {
	f := &groupFixture{}
	lights := make([]sparkle.Light, 0, len(colors))
	for _, c := range colors {
		pin := &haltest.SpyPin{}
		led := sparkle.NewLED(sparkle.LEDOpts{
			Pin:           pin,
			Color:         c,
			CommonCathode: true,
			Clock:         &haltest.ScriptClock{},
			Rand:          &haltest.ScriptRand{},
		})
		f.pins = append(f.pins, pin)
		f.leds = append(f.leds, led)
		lights = append(lights, led)
	}
	f.group = sparkle.NewGroup(lights...)
	return f
}

func TestGroupInit(t *testing.T) {
	f := newGroupFixture(sparkle.Red, sparkle.Blue, sparkle.Red)
	f.group.Init()

	require.Equal(t, 3, f.group.Len())
	for i, led := range f.leds {
		assert.Equal(t, 1, f.pins[i].Configured)
		assert.Equal(t, sparkle.ModeManual, led.Mode())
		assert.False(t, led.IsOn())
	}
}

func TestGroupAllOnAllOff(t *testing.T) {
	f := newGroupFixture(sparkle.Red, sparkle.Blue, sparkle.Green)
	f.group.Init()

	f.group.AllOn()
	for _, led := range f.leds {
		assert.True(t, led.IsOn())
		assert.Equal(t, sparkle.ModeManual, led.Mode())
	}

	f.group.AllOff()
	for _, led := range f.leds {
		assert.False(t, led.IsOn())
	}
}

func TestColorFilterExactness(t *testing.T) {
	f := newGroupFixture(sparkle.Red, sparkle.Blue, sparkle.Red)
	f.group.Init()
	blueWrites := len(f.pins[1].Levels)

	f.group.TurnOnColor(sparkle.Red)
	assert.True(t, f.leds[0].IsOn())
	assert.False(t, f.leds[1].IsOn())
	assert.True(t, f.leds[2].IsOn())
	assert.Len(t, f.pins[1].Levels, blueWrites, "non-matching pin must be untouched")

	f.group.TurnOffColor(sparkle.Red)
	assert.False(t, f.leds[0].IsOn())
	assert.False(t, f.leds[2].IsOn())
}

func TestColorFilterAnyIsLiteral(t *testing.T) {
	f := newGroupFixture(sparkle.Any, sparkle.Red)
	f.group.Init()

	// Any is a color of its own, not a wildcard.
	f.group.TurnOnColor(sparkle.Any)
	assert.True(t, f.leds[0].IsOn())
	assert.False(t, f.leds[1].IsOn())

	f.group.TurnOffColor(sparkle.Any)
	assert.False(t, f.leds[0].IsOn())
}

func TestColorFilterNoMatches(t *testing.T) {
	f := newGroupFixture(sparkle.Red, sparkle.Blue)
	f.group.Init()

	f.group.TurnOnColor(sparkle.Purple)
	for _, led := range f.leds {
		assert.False(t, led.IsOn())
	}
}

// orderLight records the order group operations reach it.
type orderLight struct {
	id  int
	log *[]int
}

func (o *orderLight) Init()                { *o.log = append(*o.log, o.id) }
func (o *orderLight) TurnOn()              { *o.log = append(*o.log, o.id) }
func (o *orderLight) TurnOff()             { *o.log = append(*o.log, o.id) }
func (o *orderLight) Color() sparkle.Color { return sparkle.Any }
func (o *orderLight) IsOn() bool           { return false }
func (o *orderLight) Update()              { *o.log = append(*o.log, o.id) }

func TestGroupVisitsInConstructionOrder(t *testing.T) {
	var log []int
	g := sparkle.NewGroup(
		&orderLight{id: 0, log: &log},
		&orderLight{id: 1, log: &log},
		&orderLight{id: 2, log: &log},
	)

	g.Init()
	g.Update()
	g.AllOn()
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2}, log)
}

func TestGroupUpdateTicksMembers(t *testing.T) {
	pin := &haltest.SpyPin{}
	clock := &haltest.ScriptClock{}
	led := sparkle.NewLED(sparkle.LEDOpts{
		Pin:           pin,
		Color:         sparkle.Red,
		CommonCathode: true,
		Clock:         clock,
		Rand:          &haltest.ScriptRand{},
	})
	g := sparkle.NewGroup(led)
	g.Init()

	led.SetBlink(50, 30)
	led.StartBlink()
	require.True(t, led.IsOn())

	clock.Set(50)
	g.Update()
	assert.False(t, led.IsOn(), "group update must drive member state machines")
}

func TestLightsReturnsCopy(t *testing.T) {
	f := newGroupFixture(sparkle.Red, sparkle.Blue)
	lights := f.group.Lights()
	require.Len(t, lights, 2)

	lights[0] = nil
	assert.NotNil(t, f.group.Lights()[0], "mutating the returned slice must not touch the group")
}
