package sparkle

// Light is the capability a Group needs from each member. LED is the one
// implementation today; the interface leaves room for multi-channel LED
// types later.
type Light interface {
	Init()
	TurnOn()
	TurnOff()
	Color() Color
	IsOn() bool
	Update()
}

// Group owns a fixed set of lights and fans operations out to them. The
// membership and its order are fixed at construction; members are visited
// in construction order by every group operation.
type Group struct {
	lights []Light
}

// NewGroup builds a group over the given lights. The group keeps its own
// copy of the list, so the caller's slice can be reused.
func NewGroup(lights ...Light) *Group {
	g := &Group{lights: make([]Light, len(lights))}
	copy(g.lights, lights)
	return g
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.lights) }

// Lights returns the members in construction order. The returned slice is a
// copy; mutate members only through their own methods.
func (g *Group) Lights() []Light {
	out := make([]Light, len(g.lights))
	copy(out, g.lights)
	return out
}

// Init initializes every member's pin, in construction order.
func (g *Group) Init() {
	for _, l := range g.lights {
		l.Init()
	}
}

// AllOn turns every member on (forcing each to ModeManual).
func (g *Group) AllOn() {
	for _, l := range g.lights {
		l.TurnOn()
	}
}

// AllOff turns every member off (forcing each to ModeManual).
func (g *Group) AllOff() {
	for _, l := range g.lights {
		l.TurnOff()
	}
}

// TurnOnColor turns on every member whose color equals c exactly. Any is an
// ordinary color value here, not a wildcard. Zero matches is not an error.
func (g *Group) TurnOnColor(c Color) {
	for _, l := range g.lights {
		if l.Color() == c {
			l.TurnOn()
		}
	}
}

// TurnOffColor turns off every member whose color equals c exactly.
func (g *Group) TurnOffColor(c Color) {
	for _, l := range g.lights {
		if l.Color() == c {
			l.TurnOff()
		}
	}
}

// Update ticks every member, in construction order. This is the single
// tick driver for the whole group; call it once per polling cycle.
func (g *Group) Update() {
	for _, l := range g.lights {
		l.Update()
	}
}
