package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "agents")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds every tick phase in pipeline order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "weather", Name: "Weather", Description: "Advances climate, temperature and fade", Category: "environment"})
	r.Register(SystemInfo{ID: "danger", Name: "Danger", Description: "Animates attacks and decays rage", Category: "environment"})

	r.Register(SystemInfo{ID: "spatial_grid", Name: "Spatial Grid", Description: "Rebuilds neighbor lookup grid", Category: "core"})
	r.Register(SystemInfo{ID: "hazard", Name: "Hazard", Description: "Detects Survivors near Danger", Category: "interaction"})
	r.Register(SystemInfo{ID: "follow", Name: "Follow", Description: "Propagates flee directions", Category: "interaction"})
	r.Register(SystemInfo{ID: "food", Name: "Food", Description: "Decay, respawn, detection and rush regulation", Category: "interaction"})
	r.Register(SystemInfo{ID: "memory", Name: "Memory", Description: "Re-triggers remembered Danger", Category: "interaction"})

	r.Register(SystemInfo{ID: "survivors", Name: "Survivors", Description: "Steps every Survivor state machine", Category: "agents"})
	r.Register(SystemInfo{ID: "cleanup", Name: "Cleanup", Description: "Removes faded Survivors", Category: "core"})
	r.Register(SystemInfo{ID: "census", Name: "Census", Description: "Counts states, podium and winner", Category: "core"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Writes stats, events and bookmarks", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
