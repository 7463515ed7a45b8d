// Package timers provides the simulated clock and the per-entity named timer
// registry every simulation component schedules with.
//
// All durations are seconds of simulated time. The clock only moves when the
// game advances it, so timer behaviour is independent of frame rate.
package timers

// Clock reports the current simulated time in seconds.
type Clock interface {
	Now() float64
}

// SimClock is a Clock advanced explicitly by the tick loop.
type SimClock struct {
	now float64
}

// NewSimClock returns a clock starting at t=0.
func NewSimClock() *SimClock {
	return &SimClock{}
}

// Now returns the current simulated time.
func (c *SimClock) Now() float64 { return c.now }

// Advance moves the clock forward by dt seconds.
func (c *SimClock) Advance(dt float64) {
	c.now += dt
}

// Set jumps the clock to t. Used by tests.
func (c *SimClock) Set(t float64) {
	c.now = t
}

// Registry maps timer names to the time they last fired.
// The zero value is ready to use. A name absent from the registry has never
// been started.
type Registry struct {
	last map[string]float64
}

func (r *Registry) ensure() {
	if r.last == nil {
		r.last = make(map[string]float64, 8)
	}
}

// Check reports whether d seconds have elapsed since name last fired.
//
// The first query for an unseen name records now and returns false. A true
// result resets the reference to now. A false result after the first call
// has no side effect.
func (r *Registry) Check(now float64, name string, d float64) bool {
	r.ensure()
	last, ok := r.last[name]
	if !ok {
		r.last[name] = now
		return false
	}
	if now-last >= d {
		r.last[name] = now
		return true
	}
	return false
}

// Cooldown reports whether the named cooldown is free and, if so, starts it.
// Unlike Check, an unseen name is free immediately.
func (r *Registry) Cooldown(now float64, name string, d float64) bool {
	r.ensure()
	last, ok := r.last[name]
	if ok && now-last < d {
		return false
	}
	r.last[name] = now
	return true
}

// Start (re)starts the named timer at now.
func (r *Registry) Start(now float64, name string) {
	r.ensure()
	r.last[name] = now
}

// Elapsed returns the seconds since name last fired, and whether it exists.
func (r *Registry) Elapsed(now float64, name string) (float64, bool) {
	last, ok := r.last[name]
	if !ok {
		return 0, false
	}
	return now - last, true
}

// Has reports whether name has been started.
func (r *Registry) Has(name string) bool {
	_, ok := r.last[name]
	return ok
}

// Delete forgets name, so the next Check behaves like a first call.
func (r *Registry) Delete(name string) {
	delete(r.last, name)
}

// Len returns the number of started timers.
func (r *Registry) Len() int {
	return len(r.last)
}
