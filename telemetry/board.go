package telemetry

import (
	"fmt"
	"time"
)

// Sink receives labelled debug values from the simulation.
type Sink interface {
	Add(label string, value any)
}

// BoardLine is one rendered debug value.
type BoardLine struct {
	Label string
	Value string
}

// Board is a Sink that keeps the latest value per label in first-seen
// order, for the on-screen debug panel.
type Board struct {
	lines []BoardLine
	index map[string]int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{index: make(map[string]int)}
}

// Add sets label to value.
func (b *Board) Add(label string, value any) {
	s := formatValue(value)
	if i, ok := b.index[label]; ok {
		b.lines[i].Value = s
		return
	}
	b.index[label] = len(b.lines)
	b.lines = append(b.lines, BoardLine{Label: label, Value: s})
}

// Get returns the current value for label.
func (b *Board) Get(label string) (string, bool) {
	i, ok := b.index[label]
	if !ok {
		return "", false
	}
	return b.lines[i].Value, true
}

// Lines returns the board contents in first-seen order.
func (b *Board) Lines() []BoardLine {
	return b.lines
}

// Reset drops every line.
func (b *Board) Reset() {
	b.lines = b.lines[:0]
	clear(b.index)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case float32:
		return fmt.Sprintf("%.2f", x)
	case time.Duration:
		return x.Round(time.Millisecond).String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Discard is a Sink that drops everything, for headless runs.
type Discard struct{}

// Add does nothing.
func (Discard) Add(string, any) {}
