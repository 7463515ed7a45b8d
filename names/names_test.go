package names

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/pthm-cable/survivors/config"
)

func syllables(t *testing.T, mutate func(*config.NamesConfig)) *Syllables {
	t.Helper()
	cfg := config.NamesConfig{SyllablesMin: 2, SyllablesMax: 4, MaxAttempts: 1000, MinDistance: 1}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSyllables(cfg, rand.New(rand.NewPCG(7, 11)))
}

func TestAllocateUnique(t *testing.T) {
	s := syllables(t, nil)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		name, err := s.Allocate()
		if err != nil {
			t.Fatalf("Allocate #%d: %v", i, err)
		}
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		if !unicode.IsUpper(rune(name[0])) {
			t.Errorf("name %q is not capitalised", name)
		}
	}
	if s.Taken() != 500 {
		t.Errorf("Taken = %d, want 500", s.Taken())
	}
}

func TestAllocateDeterministic(t *testing.T) {
	a := syllables(t, nil)
	b := syllables(t, nil)
	for i := 0; i < 20; i++ {
		na, _ := a.Allocate()
		nb, _ := b.Allocate()
		if na != nb {
			t.Fatalf("allocation %d differs: %q vs %q", i, na, nb)
		}
	}
}

func TestAllocateMinDistance(t *testing.T) {
	s := syllables(t, func(c *config.NamesConfig) { c.MinDistance = 3 })
	var got []string
	for i := 0; i < 40; i++ {
		name, err := s.Allocate()
		if err != nil {
			break
		}
		got = append(got, name)
	}
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if d := levenshtein.ComputeDistance(got[i], got[j]); d < 3 {
				t.Errorf("%q and %q are %d edits apart, want >= 3", got[i], got[j], d)
			}
		}
	}
}

func TestAllocateExhausted(t *testing.T) {
	// Two-syllable names only, with a distance nothing can satisfy twice.
	s := syllables(t, func(c *config.NamesConfig) {
		c.SyllablesMax = 3
		c.MinDistance = 50
		c.MaxAttempts = 20
	})
	if _, err := s.Allocate(); err != nil {
		t.Fatalf("first Allocate: %v", err)
	}
	_, err := s.Allocate()
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("second Allocate error = %v, want ErrExhausted", err)
	}
}

func TestListSkipsTaken(t *testing.T) {
	l := NewList("Bolar", "Bolar", "Kiras")
	first, _ := l.Allocate()
	second, _ := l.Allocate()
	if first != "Bolar" || second != "Kiras" {
		t.Errorf("got %q, %q; duplicate list entries must be skipped", first, second)
	}
	if l.Taken() != 2 {
		t.Errorf("Taken = %d, want 2", l.Taken())
	}
	if _, err := l.Allocate(); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted from drained list, got %v", err)
	}
}

func TestSuffix(t *testing.T) {
	s := syllables(t, func(c *config.NamesConfig) { c.SuffixChance = 1 })
	name, err := s.Allocate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(name, " The ") {
		t.Errorf("name %q has no suffix with suffix chance 1", name)
	}
}

var _ Allocator = (*Syllables)(nil)
var _ Allocator = (*List)(nil)
