package systems

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
)

// RushResult is the outcome of one regulation round.
type RushResult struct {
	Eaters     int
	Rushers    int   // after regulation
	Disengaged []int // agent indices sent back to Search, ascending
	Overbooked bool  // more eaters than the Food admits
}

// RegulateRush keeps eaters plus rushers within maxEaters. Surplus rushers
// are drawn uniformly without replacement and lose their appetite. Food.Full
// is set from the post-regulation counts.
func RegulateRush(agents []Agent, food *Food, maxEaters int, rng *rand.Rand, now float64) RushResult {
	var res RushResult
	var rushers []int
	for i, a := range agents {
		switch a.State.Mode {
		case components.ModeEating:
			res.Eaters++
		case components.ModeRush:
			rushers = append(rushers, i)
		}
	}

	if res.Eaters+len(rushers) > maxEaters {
		slots := max(0, maxEaters-res.Eaters)
		if excess := len(rushers) - slots; excess > 0 {
			picks := make([]int, excess)
			sampleuv.WithoutReplacement(picks, len(rushers), rng)
			for _, p := range picks {
				idx := rushers[p]
				SuppressAppetite(agents[idx].State, now)
				res.Disengaged = append(res.Disengaged, idx)
			}
			slices.Sort(res.Disengaged)
		}
	}

	res.Rushers = len(rushers) - len(res.Disengaged)
	res.Overbooked = res.Eaters > maxEaters
	food.Full = res.Eaters >= maxEaters || res.Rushers >= maxEaters
	return res
}

// DetectFood restores expired eating cooldowns and sends every hungry,
// searching Survivor that smells the Food into Rush. It returns how many
// started rushing.
func DetectFood(agents []Agent, food *Food, now float64, cfg *config.Config) int {
	started := 0
	for _, a := range agents {
		st := a.State
		if !st.Mobile() {
			continue
		}
		if !st.AbleToEat && st.Timers.Check(now, timerEatingCooldown, cfg.Survivor.EatingCooldown) {
			st.AbleToEat = true
			st.Timers.Delete(timerEatingCooldown)
		}

		if a.Energy.Value > cfg.Derived.EnergyHungry ||
			st.Mode != components.ModeSearch || st.Following || !st.AbleToEat ||
			food.Full || food.InCooldown {
			continue
		}
		if Distance(a.Vec(), food.Pos) >= food.ScentRadius+a.Senses.SensoryRadius {
			continue
		}
		st.Mode = components.ModeRush
		started++
	}
	return started
}
