// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Survivor  SurvivorConfig  `yaml:"survivor"`
	Danger    DangerConfig    `yaml:"danger"`
	Food      FoodConfig      `yaml:"food"`
	Weather   WeatherConfig   `yaml:"weather"`
	Watcher   WatcherConfig   `yaml:"watcher"`
	Names     NamesConfig     `yaml:"names"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bookmarks BookmarksConfig `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world bounds and population size.
type WorldConfig struct {
	Width      int `yaml:"width"`  // 0 = use screen width
	Height     int `yaml:"height"` // 0 = use screen height
	Population int `yaml:"population"`
	// Upper bound on rejection-sampling draws for any single placement.
	PlacementAttempts int `yaml:"placement_attempts"`
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// SurvivorConfig holds survivor energy, speed, perception and timing parameters.
type SurvivorConfig struct {
	Radius        float64 `yaml:"radius"`
	SensoryRadius float64 `yaml:"sensory_radius"`

	EnergyMax           float64 `yaml:"energy_max"`
	HungryRatio         float64 `yaml:"hungry_ratio"`   // energy_hungry = energy_max * ratio
	CriticalRatio       float64 `yaml:"critical_ratio"` // energy_critical = energy_max * ratio
	EnergyLossNormal    float64 `yaml:"energy_loss_normal"`
	EnergyLossFollow    float64 `yaml:"energy_loss_follow"`
	EnergyLossDanger    float64 `yaml:"energy_loss_danger"`
	EnergyLossFrequency float64 `yaml:"energy_loss_frequency"`
	BonusFrequency      float64 `yaml:"bonus_frequency"`
	BonusFrequencyCrit  float64 `yaml:"bonus_frequency_critical"`

	Speed              float64 `yaml:"speed"`
	SpeedCriticalRatio float64 `yaml:"speed_critical_ratio"`
	SpeedRushBonus     float64 `yaml:"speed_rush_bonus"`
	SpeedFleeBonus     float64 `yaml:"speed_flee_bonus"`

	DirectionMin        float64 `yaml:"direction_min"`
	DirectionMax        float64 `yaml:"direction_max"`
	FleeDurationMin     float64 `yaml:"flee_duration_min"`
	FleeDurationMax     float64 `yaml:"flee_duration_max"`
	DejaVuFleeDuration  float64 `yaml:"deja_vu_flee_duration"`
	ImmobilizeDuration  float64 `yaml:"immobilize_duration"`
	FadeDuration        float64 `yaml:"fade_duration"`
	FadeTolerance       float64 `yaml:"fade_tolerance"`
	EatingCooldown      float64 `yaml:"eating_cooldown"`
	SensoryShrinkPeriod float64 `yaml:"sensory_shrink_period"`

	AudacityMin        float64 `yaml:"audacity_min"`
	AudacityMax        float64 `yaml:"audacity_max"`
	ResilienceMin      float64 `yaml:"resilience_min"`
	ResilienceMax      float64 `yaml:"resilience_max"`
	MemoryEnergyRatio  float64 `yaml:"memory_energy_ratio"`
	SecurityEdgeFactor float64 `yaml:"security_edge_factor"`
	SecurityScale      float64 `yaml:"security_scale"`

	// Placement: survivors spawn this many sensory radii from the edges,
	// and at least sensory_radius + danger_edge_factor*danger.edge from Danger.
	SpawnMarginRatio float64 `yaml:"spawn_margin_ratio"`
	DangerEdgeFactor float64 `yaml:"danger_edge_factor"`
}

// DangerConfig holds hazard parameters.
type DangerConfig struct {
	Edge             float64 `yaml:"edge"`
	Damage           float64 `yaml:"damage"`
	AttackSpeed      float64 `yaml:"attack_speed"`
	ReturnSpeed      float64 `yaml:"return_speed"`
	RotationSpeedMax float64 `yaml:"rotation_speed_max"`
	AttackCooldown   float64 `yaml:"attack_cooldown"`
	RageCooldown     float64 `yaml:"rage_cooldown"`
	AttackDuration   float64 `yaml:"attack_duration"`
	ReturnDuration   float64 `yaml:"return_duration"`
	SpawnMarginEdges float64 `yaml:"spawn_margin_edges"` // anchor kept this many edges from the bounds
}

// FoodConfig holds resource parameters.
type FoodConfig struct {
	EdgeMin         float64 `yaml:"edge_min"`
	EdgeMax         float64 `yaml:"edge_max"`
	ScentMinRatio   float64 `yaml:"scent_min_ratio"` // scent_min = edge_max * ratio
	ScentMaxRatio   float64 `yaml:"scent_max_ratio"` // scent_max = edge_max * ratio
	QuantityMin     float64 `yaml:"quantity_min"`
	QuantityMax     float64 `yaml:"quantity_max"`
	EnergyBonus     float64 `yaml:"energy_bonus"`
	MaxEaters       int     `yaml:"max_eaters"`
	TimeToRespawn   float64 `yaml:"time_to_respawn"`
	DecayFrequency  float64 `yaml:"decay_frequency"`
	DecayAmount     float64 `yaml:"decay_amount"`
	DangerDistRatio float64 `yaml:"danger_distance_ratio"` // min distance from Danger = width * ratio
}

// WeatherConfig holds climate cycle parameters.
type WeatherConfig struct {
	RefreshFrequency float64         `yaml:"refresh_frequency"`
	FadeDuration     float64         `yaml:"fade_duration"`
	Neutral          float64         `yaml:"neutral_temperature"`
	Temperate        ClimateConfig   `yaml:"temperate"`
	Cold             ClimateConfig   `yaml:"cold"`
	Hot              ClimateConfig   `yaml:"hot"`
	Cycle            []string        `yaml:"cycle"`
	Weighting        WeightingConfig `yaml:"weighting"`
}

// ClimateConfig holds one climate's temperature model, dwell time and penalties.
type ClimateConfig struct {
	Mean      float64       `yaml:"mean"`
	StdDev    float64       `yaml:"std_dev"`
	Duration  float64       `yaml:"duration"`
	Color     [3]uint8      `yaml:"color"`
	Penalties PenaltyConfig `yaml:"penalties"`
}

// PenaltyConfig holds base multipliers for one climate. Zero means 1.
type PenaltyConfig struct {
	Speed        float64 `yaml:"speed"`
	EnergyLoss   float64 `yaml:"energy_loss"`
	FoodQuantity float64 `yaml:"food_quantity"`
	FoodDecay    float64 `yaml:"food_decay"`
	FoodRespawn  float64 `yaml:"food_respawn"`
	RageCooldown float64 `yaml:"rage_cooldown"`
}

// WeightingConfig holds the constants of the penalty weighting function.
type WeightingConfig struct {
	Floor           float64 `yaml:"floor"`
	EnergyFloor     float64 `yaml:"energy_floor"`
	PerDegree       float64 `yaml:"per_degree"`
	TemperatureCap  float64 `yaml:"temperature_cap"`
	ResilienceSwing float64 `yaml:"resilience_swing"`
}

// WatcherConfig holds census and podium parameters.
type WatcherConfig struct {
	PodiumThreshold int `yaml:"podium_threshold"`
	PodiumPlaces    int `yaml:"podium_places"`
}

// NamesConfig holds name allocator parameters.
type NamesConfig struct {
	SyllablesMin int     `yaml:"syllables_min"`
	SyllablesMax int     `yaml:"syllables_max"`
	SuffixChance float64 `yaml:"suffix_chance"`
	MaxAttempts  int     `yaml:"max_attempts"`
	MinDistance  int     `yaml:"min_distance"` // minimum Levenshtein distance to every taken name
}

// TelemetryConfig holds telemetry output parameters.
type TelemetryConfig struct {
	StatsWindow   float64 `yaml:"stats_window"`   // seconds per stats window
	PerfWindow    int     `yaml:"perf_window"`    // ticks averaged by the perf collector
	DiagnosticGap float64 `yaml:"diagnostic_gap"` // min seconds between repeated diagnostics
	EventsBuffer  int     `yaml:"events_buffer"`  // events kept in memory before a flush
}

// BookmarksConfig holds bookmark detection parameters.
type BookmarksConfig struct {
	Enabled        bool    `yaml:"enabled"`
	HistorySize    int     `yaml:"history_size"`
	CrashThreshold float64 `yaml:"crash_threshold"` // fraction of population lost within one window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW, WorldH float64

	EnergyHungry   float64
	EnergyCritical float64

	SpeedCritical     float64
	SpeedRush         float64
	SpeedFlee         float64
	SpeedFleeCritical float64

	ScentMin, ScentMax float64
}

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after mutating a loaded config in place.
func (c *Config) ComputeDerived() {
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	s := &c.Survivor
	c.Derived.EnergyHungry = s.EnergyMax * s.HungryRatio
	c.Derived.EnergyCritical = s.EnergyMax * s.CriticalRatio
	c.Derived.SpeedCritical = s.Speed * s.SpeedCriticalRatio
	c.Derived.SpeedRush = s.Speed + s.SpeedRushBonus
	c.Derived.SpeedFlee = s.Speed + s.SpeedFleeBonus
	c.Derived.SpeedFleeCritical = c.Derived.SpeedCritical + s.SpeedFleeBonus

	c.Derived.ScentMin = c.Food.EdgeMax * c.Food.ScentMinRatio
	c.Derived.ScentMax = c.Food.EdgeMax * c.Food.ScentMaxRatio
}

// MinWeightFloor is the lowest allowed weather.weighting.floor.
const MinWeightFloor = 0.1

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Physics.DT <= 0:
		return fmt.Errorf("%w: physics.dt must be positive", ErrInvalid)
	case c.Derived.WorldW <= 0 || c.Derived.WorldH <= 0:
		return fmt.Errorf("%w: world bounds must be positive", ErrInvalid)
	case c.Survivor.EnergyMax <= 0:
		return fmt.Errorf("%w: survivor.energy_max must be positive", ErrInvalid)
	case c.Survivor.AudacityMin <= 0 || c.Survivor.AudacityMax <= c.Survivor.AudacityMin:
		return fmt.Errorf("%w: survivor audacity range must be positive and non-empty", ErrInvalid)
	case c.Survivor.ResilienceMax < c.Survivor.ResilienceMin:
		return fmt.Errorf("%w: survivor resilience range is inverted", ErrInvalid)
	case c.Food.QuantityMax <= 0 || c.Food.QuantityMin > c.Food.QuantityMax:
		return fmt.Errorf("%w: food quantity range is invalid", ErrInvalid)
	case c.Food.EdgeMin > c.Food.EdgeMax:
		return fmt.Errorf("%w: food edge range is inverted", ErrInvalid)
	case c.Food.MaxEaters <= 0:
		return fmt.Errorf("%w: food.max_eaters must be positive", ErrInvalid)
	case len(c.Weather.Cycle) == 0:
		return fmt.Errorf("%w: weather.cycle is empty", ErrInvalid)
	case c.Weather.Weighting.Floor < MinWeightFloor:
		return fmt.Errorf("%w: weather.weighting.floor must be at least %v", ErrInvalid, MinWeightFloor)
	case c.World.PlacementAttempts <= 0:
		return fmt.Errorf("%w: world.placement_attempts must be positive", ErrInvalid)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
