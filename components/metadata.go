package components

// Mode is a Survivor's movement mode, listed in evaluation priority.
type Mode uint8

const (
	ModeSearch      Mode = iota // Wander looking for food
	ModeRush                    // Heading for the food
	ModeEating                  // Standing at the food
	ModeFlee                    // Running from Danger
	ModeDejaVuFlee              // Backing away from a remembered Danger
	ModeImmobilized             // Out of energy
	ModeFading                  // Last seconds before removal
)

// String returns the display name for a Mode.
func (m Mode) String() string {
	names := ModeNames()
	if int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// ModeNames returns the display names for all modes.
// The order matches the Mode constants.
func ModeNames() []string {
	return []string{"Search", "Rush", "Eating", "Flee", "DejaVuFlee", "Immobilized", "Fading"}
}

// ModeCount returns the number of modes.
func ModeCount() int {
	return len(ModeNames())
}
