package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkClimateChange   BookmarkType = "climate_change"
	BookmarkPodiumOpened    BookmarkType = "podium_opened"
	BookmarkPopulationCrash BookmarkType = "population_crash"
	BookmarkWinner          BookmarkType = "winner"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	crashThreshold float64
	lastClimate    string
}

// NewBookmarkDetector creates a detector with the given history size.
// crashThreshold is the fraction of the population that must be lost
// within one window to count as a crash.
func NewBookmarkDetector(historySize int, crashThreshold float64) *BookmarkDetector {
	if historySize < 2 {
		historySize = 2
	}
	if crashThreshold <= 0 {
		crashThreshold = 0.2
	}
	return &BookmarkDetector{
		history:        make([]WindowStats, historySize),
		historySize:    historySize,
		crashThreshold: crashThreshold,
	}
}

// Check analyzes the latest window stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkPopulationCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

// ClimateChanged returns a bookmark the first time climate differs from
// the one last seen.
func (bd *BookmarkDetector) ClimateChanged(tick int32, climate string) *Bookmark {
	prev := bd.lastClimate
	bd.lastClimate = climate
	if prev == "" || prev == climate {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkClimateChange,
		Tick:        tick,
		Description: fmt.Sprintf("Climate changed from %s to %s", prev, climate),
	}
}

// PodiumOpened returns the bookmark for the podium opening.
func (bd *BookmarkDetector) PodiumOpened(tick int32, living int) Bookmark {
	return Bookmark{
		Type:        BookmarkPodiumOpened,
		Tick:        tick,
		Description: fmt.Sprintf("Podium opened with %d survivors left", living),
	}
}

// Winner returns the bookmark for the declared winner.
func (bd *BookmarkDetector) Winner(tick int32, w PodiumEntry) Bookmark {
	return Bookmark{
		Type:        BookmarkWinner,
		Tick:        tick,
		Description: fmt.Sprintf("%s wins", w.Name),
	}
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// previous returns the most recent window in history.
func (bd *BookmarkDetector) previous() WindowStats {
	idx := bd.historyIdx - 1
	if idx < 0 {
		idx = bd.historySize - 1
	}
	return bd.history[idx]
}

func (bd *BookmarkDetector) checkPopulationCrash(stats WindowStats) *Bookmark {
	prev := bd.previous()
	if prev.Alive == 0 {
		return nil
	}

	drop := 1.0 - float64(stats.Alive)/float64(prev.Alive)
	if drop >= bd.crashThreshold && prev.Alive-stats.Alive >= 2 {
		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Population fell %.0f%% from %d to %d", drop*100, prev.Alive, stats.Alive),
		}
	}
	return nil
}
