package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPredatorRecovery BookmarkType = "predator_recovery"
	BookmarkPreyCrash        BookmarkType = "prey_crash"
	BookmarkStableEcosystem  BookmarkType = "stable_ecosystem"
	BookmarkExtinction       BookmarkType = "extinction"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int          `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// stableWindows is how many consecutive low-variance windows make an
// ecosystem stable.
const stableWindows = 5

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentWolfMin      int // minimum wolf count in recent history
	recentRabbitPeak   int // peak rabbit count in recent history
	stableWindowsCount int // consecutive windows with stable populations
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < stableWindows {
		historySize = stableWindows
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		// Predator recovery: was ≤3, now ≥3x that
		if b := bd.checkPredatorRecovery(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Prey crash: dropped >30% from recent peak
		if b := bd.checkPreyCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Stable ecosystem: both populations present with low variance
		if b := bd.checkStableEcosystem(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Extinction: a species present last window is gone
		bookmarks = append(bookmarks, bd.checkExtinction(stats)...)
	}

	bd.addToHistory(stats)

	// Track wolf minimum and rabbit peak
	if stats.Wolves < bd.recentWolfMin || bd.recentWolfMin == 0 {
		bd.recentWolfMin = stats.Wolves
	}
	if stats.Rabbits > bd.recentRabbitPeak {
		bd.recentRabbitPeak = stats.Rabbits
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns the recorded windows, oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) last() WindowStats {
	idx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[idx]
}

func (bd *BookmarkDetector) checkPredatorRecovery(stats WindowStats) *Bookmark {
	if bd.recentWolfMin == 0 || bd.recentWolfMin > 3 {
		return nil
	}

	threshold := bd.recentWolfMin * 3
	if stats.Wolves >= threshold && stats.Wolves >= 6 {
		// Reset the minimum after triggering
		oldMin := bd.recentWolfMin
		bd.recentWolfMin = stats.Wolves

		return &Bookmark{
			Type:        BookmarkPredatorRecovery,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Wolf population recovered from %d to %d", oldMin, stats.Wolves),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkPreyCrash(stats WindowStats) *Bookmark {
	if bd.recentRabbitPeak == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Rabbits)/float64(bd.recentRabbitPeak)
	if dropPercent > 0.30 && stats.Rabbits < bd.recentRabbitPeak-10 {
		// Reset peak after crash
		oldPeak := bd.recentRabbitPeak
		bd.recentRabbitPeak = stats.Rabbits

		return &Bookmark{
			Type:        BookmarkPreyCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Rabbits crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Rabbits),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkStableEcosystem(stats WindowStats) *Bookmark {
	// Need both populations present
	if stats.Rabbits < 10 || stats.Wolves < 3 {
		bd.stableWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	rabbits := make([]float64, len(recent))
	wolves := make([]float64, len(recent))
	for i, h := range recent {
		rabbits[i] = float64(h.Rabbits)
		wolves[i] = float64(h.Wolves)
	}

	// CV^2 < 0.04 means CV < 0.2
	if cv2(rabbits) < 0.04 && cv2(wolves) < 0.04 {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == stableWindows { // trigger exactly once
		return &Bookmark{
			Type:        BookmarkStableEcosystem,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Stable ecosystem with %d rabbits, %d wolves over %d+ windows", stats.Rabbits, stats.Wolves, stableWindows),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) []Bookmark {
	prev := bd.last()
	var out []Bookmark
	if prev.Rabbits > 0 && stats.Rabbits == 0 {
		out = append(out, Bookmark{
			Type:        BookmarkExtinction,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Rabbits went extinct (were %d)", prev.Rabbits),
		})
	}
	if prev.Wolves > 0 && stats.Wolves == 0 {
		out = append(out, Bookmark{
			Type:        BookmarkExtinction,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Wolves went extinct (were %d)", prev.Wolves),
		})
	}
	return out
}

// cv2 returns the squared coefficient of variation (population variance
// over squared mean), or 0 for a zero mean.
func cv2(values []float64) float64 {
	mean, variance := stat.PopMeanVariance(values, nil)
	if mean == 0 {
		return 0
	}
	return variance / (mean * mean)
}
