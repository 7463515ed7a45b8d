package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/survivors/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot is a read-only copy of the world. The renderer draws from it and
// bookmarks save it to disk.
type Snapshot struct {
	Version int    `json:"version"`
	Seed    uint64 `json:"seed"`

	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	Tick int32   `json:"tick"`
	Time float64 `json:"time"`

	Climate     string   `json:"climate"`
	Temperature float64  `json:"temperature"`
	Background  [3]uint8 `json:"background"`

	Danger    DangerState     `json:"danger"`
	Food      FoodState       `json:"food"`
	Survivors []SurvivorState `json:"survivors"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// SurvivorState holds one Survivor's visible state.
type SurvivorState struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`

	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`

	Radius        float64 `json:"radius"`
	SensoryRadius float64 `json:"sensory_radius"`

	Energy    float64 `json:"energy"`
	EnergyMax float64 `json:"energy_max"`

	Mode      components.Mode `json:"mode"`
	Following bool            `json:"following,omitempty"`
	Critical  bool            `json:"critical,omitempty"`
	DejaVu    bool            `json:"deja_vu,omitempty"`
	AbleToEat bool            `json:"able_to_eat"`
	OnPodium  bool            `json:"on_podium,omitempty"`
	IsFirst   bool            `json:"is_first,omitempty"`

	FadeProgress     float64 `json:"fade_progress,omitempty"`
	SecurityDistance float64 `json:"security_distance,omitempty"`

	Audacity   float64          `json:"audacity"`
	Resilience float64          `json:"resilience"`
	Stats      components.Stats `json:"stats"`
}

// DangerState holds the Danger's visible state.
type DangerState struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Edge          float64 `json:"edge"`
	Angle         float64 `json:"angle"`
	Rage          float64 `json:"rage"`
	RotationSpeed float64 `json:"rotation_speed"`
	Phase         string  `json:"phase"`
	Hits          int     `json:"hits"`
}

// FoodState holds the Food's visible state.
type FoodState struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Edge        float64 `json:"edge"`
	ScentRadius float64 `json:"scent_radius"`
	Quantity    float64 `json:"quantity"`
	Full        bool    `json:"full"`
	InCooldown  bool    `json:"in_cooldown"`
	Generation  int     `json:"generation"`
}

// Find returns the Survivor with the given ID.
func (s *Snapshot) Find(id uint32) (SurvivorState, bool) {
	for _, sv := range s.Survivors {
		if sv.ID == id {
			return sv, true
		}
	}
	return SurvivorState{}, false
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	// Build filename
	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}
