package telemetry

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/config"
)

// Resident is the view of one Survivor the Watcher reads. Residents must
// be passed in creation order.
type Resident struct {
	ID        uint32
	Name      string
	Energy    float64
	Mode      components.Mode
	Following bool
	Critical  bool
}

// Census counts the population by state. The state counts are exclusive
// with priority critical > danger > follow > eating.
type Census struct {
	Living     int
	Dead       int
	InDanger   int
	Following  int
	Critical   int
	Eating     int
	Rushing    int
	EnergyMean float64
}

// PodiumEntry is one ranked Survivor.
type PodiumEntry struct {
	Place  int
	ID     uint32
	Name   string
	Energy float64
}

// Observation is what the Watcher concluded this tick.
type Observation struct {
	Census Census
	Podium []PodiumEntry // empty unless the podium is open

	PodiumOpened bool         // the podium opened on this tick
	Winner       *PodiumEntry // set from the tick the game was won onward
	WinnerIsNew  bool
}

// First returns the first-placed entry, if the podium is open.
func (o Observation) First() (PodiumEntry, bool) {
	if len(o.Podium) == 0 {
		return PodiumEntry{}, false
	}
	return o.Podium[0], true
}

// Watcher derives census, podium and winner from the living Survivors.
// It never touches components; the game applies the flags.
type Watcher struct {
	initial   int
	threshold int
	places    int

	podiumOpen bool
	lastFirst  *PodiumEntry
	winner     *PodiumEntry

	energies []float64
	ranked   []Resident
}

// NewWatcher creates a Watcher for a population that started at initial.
func NewWatcher(cfg config.WatcherConfig, initial int) *Watcher {
	return &Watcher{
		initial:   initial,
		threshold: cfg.PodiumThreshold,
		places:    max(cfg.PodiumPlaces, 1),
	}
}

// Observe takes the census of the living Survivors.
func (w *Watcher) Observe(living []Resident) Observation {
	var obs Observation
	obs.Census = w.census(living)

	n := len(living)
	if n > 0 && n <= w.threshold {
		obs.Podium = w.rank(living)
		first := obs.Podium[0]
		w.lastFirst = &first
		if !w.podiumOpen {
			w.podiumOpen = true
			obs.PodiumOpened = true
		}
	}

	if w.winner == nil && n <= 1 {
		switch {
		case w.lastFirst != nil:
			winner := *w.lastFirst
			w.winner = &winner
		case n == 1:
			w.winner = &PodiumEntry{Place: 1, ID: living[0].ID, Name: living[0].Name, Energy: living[0].Energy}
		}
		obs.WinnerIsNew = w.winner != nil
	}
	obs.Winner = w.winner
	return obs
}

// Winner returns the declared winner, if any.
func (w *Watcher) Winner() (PodiumEntry, bool) {
	if w.winner == nil {
		return PodiumEntry{}, false
	}
	return *w.winner, true
}

// Initial returns the starting population.
func (w *Watcher) Initial() int { return w.initial }

func (w *Watcher) census(living []Resident) Census {
	c := Census{Living: len(living), Dead: max(w.initial-len(living), 0)}

	w.energies = w.energies[:0]
	for _, r := range living {
		w.energies = append(w.energies, r.Energy)
		switch {
		case r.Critical:
			c.Critical++
		case r.Mode == components.ModeFlee:
			c.InDanger++
		case r.Following:
			c.Following++
		case r.Mode == components.ModeEating:
			c.Eating++
		}
		if r.Mode == components.ModeRush {
			c.Rushing++
		}
	}
	if len(w.energies) > 0 {
		c.EnergyMean = stat.Mean(w.energies, nil)
	}
	return c
}

// rank sorts by energy descending; ties keep creation order.
func (w *Watcher) rank(living []Resident) []PodiumEntry {
	w.ranked = append(w.ranked[:0], living...)
	slices.SortStableFunc(w.ranked, func(a, b Resident) int {
		return cmp.Compare(b.Energy, a.Energy)
	})

	n := min(w.places, len(w.ranked))
	podium := make([]PodiumEntry, n)
	for i := range podium {
		r := w.ranked[i]
		podium[i] = PodiumEntry{Place: i + 1, ID: r.ID, Name: r.Name, Energy: r.Energy}
	}
	return podium
}
