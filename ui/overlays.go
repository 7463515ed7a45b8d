package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/renderer"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlaySensory     OverlayID = "sensory"
	OverlayMemory      OverlayID = "memory"
	OverlayScent       OverlayID = "scent"
	OverlayDangerLines OverlayID = "danger_lines"
	OverlayFoodLines   OverlayID = "food_lines"
	OverlayNames       OverlayID = "names"
	OverlayBoard       OverlayID = "board"
	OverlayPerf        OverlayID = "perf"
	OverlayEnergy      OverlayID = "energy"
	OverlayPodium      OverlayID = "podium"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "S", "V")
	Category    string      // Grouping (e.g., "world", "debug")
	Default     bool        // Enabled at startup
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	// World overlays
	r.Register(OverlayDescriptor{
		ID:          OverlaySensory,
		Name:        "Sensory Field",
		Description: "Ring around each Survivor at its sensory radius",
		Key:         rl.KeyS,
		KeyLabel:    "S",
		Category:    "world",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayMemory,
		Name:        "Memory",
		Description: "Security distance of Survivors that remember the Danger",
		Key:         rl.KeyM,
		KeyLabel:    "M",
		Category:    "world",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayScent,
		Name:        "Food Scent",
		Description: "Scent radius around the food",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Category:    "world",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayNames,
		Name:        "Names",
		Description: "Name under every Survivor",
		Key:         rl.KeyN,
		KeyLabel:    "N",
		Category:    "world",
	})

	// Debug overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayDangerLines,
		Name:        "Danger Links",
		Description: "Line from fleeing Survivors to the Danger",
		Key:         rl.KeyL,
		KeyLabel:    "L",
		Category:    "debug",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayFoodLines,
		Name:        "Food Links",
		Description: "Line from rushing or eating Survivors to the food",
		Key:         rl.KeyK,
		KeyLabel:    "K",
		Category:    "debug",
	})

	// Panels
	r.Register(OverlayDescriptor{
		ID:          OverlayBoard,
		Name:        "Debug Board",
		Description: "Values published by the simulation each tick",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "panels",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Performance",
		Description: "Per-phase tick timing",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "panels",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayEnergy,
		Name:        "Energy Graph",
		Description: "Population energy per stats window",
		Key:         rl.KeyG,
		KeyLabel:    "G",
		Category:    "panels",
		Exclusive:   []OverlayID{OverlayBoard},
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayPodium,
		Name:        "Podium",
		Description: "Top Survivors by energy",
		Key:         rl.KeyO,
		KeyLabel:    "O",
		Category:    "panels",
		Default:     true,
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, dup := r.byID[desc.ID]; !dup {
		r.descriptors = append(r.descriptors, desc)
	}
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	on := !r.enabled[id]
	r.SetEnabled(id, on)
	return on
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID, its new state and whether a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Enabled returns the enabled overlay IDs in registration order.
func (r *OverlayRegistry) Enabled() []OverlayID {
	var result []OverlayID
	for _, desc := range r.descriptors {
		if r.enabled[desc.ID] {
			result = append(result, desc.ID)
		}
	}
	return result
}

// Layers maps the world overlays onto renderer layers.
func (r *OverlayRegistry) Layers() renderer.Layers {
	return renderer.Layers{
		Sensory:     r.enabled[OverlaySensory],
		Memory:      r.enabled[OverlayMemory],
		Scent:       r.enabled[OverlayScent],
		DangerLines: r.enabled[OverlayDangerLines],
		FoodLines:   r.enabled[OverlayFoodLines],
		Names:       r.enabled[OverlayNames],
	}
}
