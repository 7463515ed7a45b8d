package telemetry

// WorldSample is the non-Survivor state sampled at a window flush.
type WorldSample struct {
	FoodQuantity   float64
	FoodFull       bool
	DangerRage     float64
	DangerRotation float64
	Climate        string
	Temperature    float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	counts map[EventType]int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		counts:              make(map[EventType]int),
	}
}

// Record counts one event in the current window.
func (c *Collector) Record(e Event) {
	c.counts[e.Type]++
}

// Count returns how many events of typ the current window holds.
func (c *Collector) Count(typ EventType) int {
	return c.counts[typ]
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// energies are the living Survivors' energy values.
func (c *Collector) Flush(currentTick int32, census Census, energies []float64, world WorldSample) WindowStats {
	mean, p10, p50, p90 := ComputeEnergyStats(energies)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Alive:     census.Living,
		Dead:      census.Dead,
		InDanger:  census.InDanger,
		Following: census.Following,
		Critical:  census.Critical,
		Eating:    census.Eating,
		Rushing:   census.Rushing,

		Hits:       c.counts[EventHit],
		Attacks:    c.counts[EventAttack],
		Meals:      c.counts[EventMeal],
		Satiated:   c.counts[EventSatiated],
		Disengaged: c.counts[EventDisengaged],
		Starved:    c.counts[EventStarved],
		Removed:    c.counts[EventRemoved],
		Depletions: c.counts[EventFoodDepleted],
		Respawns:   c.counts[EventFoodRespawned],

		EnergyMean: mean,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,

		FoodQuantity:   world.FoodQuantity,
		FoodFull:       world.FoodFull,
		DangerRage:     world.DangerRage,
		DangerRotation: world.DangerRotation,
		Climate:        world.Climate,
		Temperature:    world.Temperature,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	clear(c.counts)

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
