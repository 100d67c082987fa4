// Package clock provides the tick-counting timer every periodic behavior in the battle runs on.
package clock

// Clock fires its callback once every Period ticks. A zero period never fires.
type Clock[C any] struct {
	period  int
	elapsed int
	fire    func(C)
}

// New returns a clock that calls fire with the tick context every period ticks.
// A nil fire is allowed and behaves like a zero period.
func New[C any](period int, fire func(C)) Clock[C] {
	return Clock[C]{period: period, fire: fire}
}

// Tick advances the clock by one tick and reports whether it fired.
func (c *Clock[C]) Tick(ctx C) bool {
	if c.period <= 0 || c.fire == nil {
		return false
	}
	c.elapsed++
	if c.elapsed < c.period {
		return false
	}
	c.elapsed = 0
	c.fire(ctx)
	return true
}

// Period returns the configured period.
func (c *Clock[C]) Period() int { return c.period }

// Elapsed returns the ticks counted since the last fire.
func (c *Clock[C]) Elapsed() int { return c.elapsed }
