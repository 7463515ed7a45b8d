// Package weather drives the climate cycle: dwell times, Gaussian
// temperature samples, per-climate penalty coefficients and the background
// colour fade between climates. Penalties reach the agents through Weight.
package weather

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/survivors/config"
	"github.com/pthm-cable/survivors/timers"
)

// Climate identifies one of the climates in the cycle.
type Climate uint8

const (
	Temperate Climate = iota
	Cold
	Hot
)

// String returns the lower-case climate name.
func (c Climate) String() string {
	switch c {
	case Temperate:
		return "temperate"
	case Cold:
		return "cold"
	case Hot:
		return "hot"
	default:
		return fmt.Sprintf("climate(%d)", uint8(c))
	}
}

// ParseClimate parses a climate name as written in the config.
func ParseClimate(s string) (Climate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temperate":
		return Temperate, nil
	case "cold":
		return Cold, nil
	case "hot":
		return Hot, nil
	}
	return 0, fmt.Errorf("unknown climate %q", s)
}

// Penalties are the base multipliers a climate applies. Temperate is all 1.
type Penalties struct {
	Speed        float64
	EnergyLoss   float64
	FoodQuantity float64
	FoodDecay    float64
	FoodRespawn  float64
	RageCooldown float64
}

// Neutral returns the no-op penalty set.
func Neutral() Penalties {
	return Penalties{1, 1, 1, 1, 1, 1}
}

// Color is an 8-bit RGB colour, kept free of any rendering library.
type Color struct {
	R, G, B uint8
}

// Lerp interpolates from c toward to by t in [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	return Color{R: mix(c.R, to.R), G: mix(c.G, to.G), B: mix(c.B, to.B)}
}

// Profile is the static description of one climate.
type Profile struct {
	Mean      float64
	StdDev    float64
	Duration  float64
	Color     Color
	Penalties Penalties
}

// State is a read-only view of the weather for snapshots and telemetry.
type State struct {
	Climate     Climate
	Temperature float64
	Mean        float64
	Background  Color
	Fading      bool
	Cycles      int
}

// Weather is the climate controller.
type Weather struct {
	cycle    []Climate
	idx      int
	profiles [3]Profile

	temperature float64
	refresh     float64
	src         rand.Source
	timers      timers.Registry

	// Background fade between climate colours.
	fadeDuration float64
	fading       bool
	fadeFrom     Color
	fadeTo       Color
	background   Color

	cycles    int
	weighting Weighting
}

const (
	timerDwell   = "dwell"
	timerRefresh = "temperature"
	timerFade    = "fade"
)

// New builds a weather controller from config. src drives temperature draws.
func New(cfg config.WeatherConfig, src rand.Source) (*Weather, error) {
	cycle := make([]Climate, 0, len(cfg.Cycle))
	for _, name := range cfg.Cycle {
		c, err := ParseClimate(name)
		if err != nil {
			return nil, fmt.Errorf("weather cycle: %w", err)
		}
		cycle = append(cycle, c)
	}
	if len(cycle) == 0 {
		return nil, fmt.Errorf("weather cycle is empty")
	}

	w := &Weather{
		cycle:        cycle,
		refresh:      cfg.RefreshFrequency,
		src:          src,
		fadeDuration: cfg.FadeDuration,
		weighting:    WeightingFromConfig(cfg),
	}
	w.profiles[Temperate] = profileFrom(cfg.Temperate)
	w.profiles[Cold] = profileFrom(cfg.Cold)
	w.profiles[Hot] = profileFrom(cfg.Hot)

	first := w.profiles[w.Climate()]
	w.temperature = first.Mean
	w.background = first.Color
	return w, nil
}

func profileFrom(c config.ClimateConfig) Profile {
	p := Profile{
		Mean:     c.Mean,
		StdDev:   c.StdDev,
		Duration: c.Duration,
		Color:    Color{R: c.Color[0], G: c.Color[1], B: c.Color[2]},
		Penalties: Penalties{
			Speed:        orOne(c.Penalties.Speed),
			EnergyLoss:   orOne(c.Penalties.EnergyLoss),
			FoodQuantity: orOne(c.Penalties.FoodQuantity),
			FoodDecay:    orOne(c.Penalties.FoodDecay),
			FoodRespawn:  orOne(c.Penalties.FoodRespawn),
			RageCooldown: orOne(c.Penalties.RageCooldown),
		},
	}
	return p
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Update advances the climate cycle, temperature and fade to now.
// It returns true when the climate changed during this call.
func (w *Weather) Update(now float64) bool {
	changed := false
	if w.timers.Check(now, timerDwell, w.profiles[w.Climate()].Duration) {
		w.advance(now)
		changed = true
	}

	if w.timers.Check(now, timerRefresh, w.refresh) {
		p := w.profiles[w.Climate()]
		w.temperature = distuv.Normal{Mu: p.Mean, Sigma: p.StdDev, Src: w.src}.Rand()
	}

	w.updateFade(now)
	return changed
}

func (w *Weather) advance(now float64) {
	from := w.profiles[w.Climate()].Color
	w.idx = (w.idx + 1) % len(w.cycle)
	if w.idx == 0 {
		w.cycles++
	}

	w.fading = true
	w.fadeFrom = from
	w.fadeTo = w.profiles[w.Climate()].Color
	w.timers.Start(now, timerFade)
}

func (w *Weather) updateFade(now float64) {
	if !w.fading {
		return
	}
	elapsed, _ := w.timers.Elapsed(now, timerFade)
	t := 1.0
	if w.fadeDuration > 0 {
		t = min(elapsed/w.fadeDuration, 1)
	}
	w.background = w.fadeFrom.Lerp(w.fadeTo, t)
	if t >= 1 {
		w.fading = false
		w.timers.Delete(timerFade)
	}
}

// Climate returns the current climate.
func (w *Weather) Climate() Climate { return w.cycle[w.idx] }

// Temperature returns the last sampled temperature.
func (w *Weather) Temperature() float64 { return w.temperature }

// Mean returns the current climate's mean temperature.
func (w *Weather) Mean() float64 { return w.profiles[w.Climate()].Mean }

// Penalties returns the current climate's base coefficients.
func (w *Weather) Penalties() Penalties { return w.profiles[w.Climate()].Penalties }

// Profile returns the static profile of c.
func (w *Weather) Profile(c Climate) Profile { return w.profiles[c] }

// Weighting returns the weighting constants used with this weather.
func (w *Weather) Weighting() Weighting { return w.weighting }

// Background returns the current background colour.
func (w *Weather) Background() Color { return w.background }

// Cycles returns how many full climate cycles have completed.
func (w *Weather) Cycles() int { return w.cycles }

// TemperatureFactor returns the temperature input for Weight.
func (w *Weather) TemperatureFactor() *TemperatureFactor {
	return &TemperatureFactor{Current: w.temperature, Mean: w.Mean()}
}

// State returns a snapshot of the weather.
func (w *Weather) State() State {
	return State{
		Climate:     w.Climate(),
		Temperature: w.temperature,
		Mean:        w.Mean(),
		Background:  w.background,
		Fading:      w.fading,
		Cycles:      w.cycles,
	}
}
