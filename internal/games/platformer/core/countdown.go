package core

// Countdown counts a fixed number of ticks toward zero. Every timed effect
// in the simulation (invulnerability, spawner intervals, mode phases) runs
// on one of these, so timing stays tick-exact and serializes as one int.
type Countdown struct {
	Remaining int
}

// NewCountdown starts a countdown with the given number of ticks.
func NewCountdown(ticks int) Countdown {
	return Countdown{Remaining: ticks}
}

// Tick advances one tick and reports whether the countdown expired on
// exactly this tick. Ticking an expired countdown does nothing.
func (c *Countdown) Tick() bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining--
	return c.Remaining == 0
}

// Active reports whether ticks remain.
func (c Countdown) Active() bool {
	return c.Remaining > 0
}

// Expired reports whether the countdown has run out.
func (c Countdown) Expired() bool {
	return c.Remaining <= 0
}

// Reset restarts the countdown with the given number of ticks.
func (c *Countdown) Reset(ticks int) {
	c.Remaining = ticks
}
