// Package names hands out unique survivor names.
//
// Allocation goes through the Allocator interface so the game can inject a
// seeded generator and tests can inject a fixed list.
package names

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pthm-cable/survivors/config"
)

// ErrExhausted is returned when no fresh name could be produced.
var ErrExhausted = errors.New("name pool exhausted")

// Allocator draws names without replacement.
type Allocator interface {
	Allocate() (string, error)
	Taken() int
}

var (
	beginning = []string{
		"ba", "be", "bi", "bo", "bu", "da", "de", "di", "do", "du",
		"fa", "fe", "fi", "fo", "fu", "ga", "ge", "gi", "go", "gu",
		"ha", "he", "hi", "ho", "hu", "ja", "je", "ji", "jo", "ju",
		"ka", "ke", "ki", "ko", "ku", "la", "le", "li", "lo", "lu",
		"ma", "me", "mi", "mo", "mu", "na", "ne", "ni", "no", "nu",
		"pa", "pe", "pi", "po", "pu", "ra", "re", "ri", "ro", "ru",
		"sa", "se", "si", "so", "su", "ta", "te", "ti", "to", "tu",
		"va", "ve", "vi", "vo", "vu", "wa", "we", "wi", "wo", "wu",
		"ya", "ye", "yi", "yo", "yu", "za", "ze", "zi", "zo", "zu",
	}
	middle = []string{
		"la", "le", "li", "lo", "lu", "ra", "re", "ri", "ro", "ru",
		"na", "ne", "ni", "no", "nu", "ma", "me", "mi", "mo", "mu",
		"ga", "ge", "gi", "go", "gu", "da", "de", "di", "do", "du",
		"ba", "be", "bi", "bo", "bu",
	}
	final = []string{
		"ar", "er", "ir", "or", "ur", "al", "el", "il", "ol", "ul",
		"an", "en", "in", "on", "un", "as", "es", "is", "os", "us",
		"ard", "erd", "ird", "ord", "urd", "ald", "eld", "ild", "old", "uld",
		"and", "end", "ind", "ond", "und", "ast", "est", "ist", "ost", "ust",
	}
	suffixes = []string{"The Beast", "The Survivor", "The Last"}
)

// Syllables generates names from syllable tables with a seeded rng.
type Syllables struct {
	rng          *rand.Rand
	minSyllables int
	maxSyllables int // exclusive
	suffixChance float64
	maxAttempts  int
	minDistance  int

	taken map[string]struct{}
}

// NewSyllables builds a syllable allocator from config.
func NewSyllables(cfg config.NamesConfig, rng *rand.Rand) *Syllables {
	s := &Syllables{
		rng:          rng,
		minSyllables: max(cfg.SyllablesMin, 2),
		maxSyllables: cfg.SyllablesMax,
		suffixChance: cfg.SuffixChance,
		maxAttempts:  max(cfg.MaxAttempts, 1),
		minDistance:  max(cfg.MinDistance, 1),
		taken:        make(map[string]struct{}),
	}
	if s.maxSyllables <= s.minSyllables {
		s.maxSyllables = s.minSyllables + 1
	}
	return s
}

// Allocate returns a name not yet handed out, at least minDistance edits
// away from every taken name.
func (s *Syllables) Allocate() (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		name := s.generate()
		if s.acceptable(name) {
			s.taken[name] = struct{}{}
			return name, nil
		}
	}
	return "", fmt.Errorf("after %d attempts with %d names taken: %w", s.maxAttempts, len(s.taken), ErrExhausted)
}

func (s *Syllables) acceptable(name string) bool {
	if _, dup := s.taken[name]; dup {
		return false
	}
	if s.minDistance <= 1 {
		return true
	}
	for other := range s.taken {
		if levenshtein.ComputeDistance(name, other) < s.minDistance {
			return false
		}
	}
	return true
}

func (s *Syllables) generate() string {
	n := s.minSyllables + s.rng.IntN(s.maxSyllables-s.minSyllables)

	var b strings.Builder
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			b.WriteString(pick(s.rng, beginning))
		case i == n-1:
			b.WriteString(pick(s.rng, final))
		default:
			b.WriteString(pick(s.rng, middle))
		}
	}
	name := b.String()
	name = strings.ToUpper(name[:1]) + name[1:]

	if s.suffixChance > 0 && s.rng.Float64() < s.suffixChance {
		name += " " + pick(s.rng, suffixes)
	}
	return name
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}

// Taken returns how many names are currently allocated.
func (s *Syllables) Taken() int {
	return len(s.taken)
}

// List hands out a fixed list of names in order. Useful in tests.
type List struct {
	names []string
	next  int
	taken map[string]struct{}
}

// NewList returns an allocator over names.
func NewList(names ...string) *List {
	return &List{names: names, taken: make(map[string]struct{})}
}

// Allocate returns the next unused name in the list.
func (l *List) Allocate() (string, error) {
	for l.next < len(l.names) {
		name := l.names[l.next]
		l.next++
		if _, dup := l.taken[name]; dup {
			continue
		}
		l.taken[name] = struct{}{}
		return name, nil
	}
	return "", fmt.Errorf("list of %d names: %w", len(l.names), ErrExhausted)
}

// Taken returns how many names are currently allocated.
func (l *List) Taken() int {
	return len(l.taken)
}
