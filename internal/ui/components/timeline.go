package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/replayz/internal/ui/theme"
)

// Timeline is the playback scrubber: elapsed time, a position bar with
// conversation markers, and total duration.
type Timeline struct {
	PositionMs int64
	DurationMs int64
	// MarkerMs are timeline offsets to mark on the bar, typically
	// conversation starts.
	MarkerMs  []int64
	Scrubbing bool
	Width     int
}

// FormatOffset renders a millisecond offset as m:ss.
func FormatOffset(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSecs := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSecs/60, totalSecs%60)
}

// View renders the timeline.
func (tl Timeline) View() string {
	elapsed := FormatOffset(tl.PositionMs)
	total := FormatOffset(tl.DurationMs)

	timeWidth := len(elapsed) + len(total) + 4
	barWidth := tl.Width - timeWidth
	if barWidth < 10 {
		barWidth = 10
	}

	pos := 0
	if tl.DurationMs > 0 {
		pos = int(float64(barWidth-1) * float64(tl.PositionMs) / float64(tl.DurationMs))
	}
	if pos < 0 {
		pos = 0
	}
	if pos > barWidth-1 {
		pos = barWidth - 1
	}

	cells := make([]rune, barWidth)
	for i := range cells {
		cells[i] = '─'
	}
	for _, m := range tl.MarkerMs {
		if tl.DurationMs <= 0 {
			break
		}
		i := int(float64(barWidth-1) * float64(m) / float64(tl.DurationMs))
		if i >= 0 && i < barWidth {
			cells[i] = '·'
		}
	}

	playedStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	restStyle := lipgloss.NewStyle().Foreground(theme.Border)
	knobStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if tl.Scrubbing {
		knobStyle = knobStyle.Foreground(theme.Accent)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(elapsed))
	b.WriteString("  ")
	b.WriteString(playedStyle.Render(string(cells[:pos])))
	b.WriteString(knobStyle.Render("●"))
	if pos+1 < barWidth {
		b.WriteString(restStyle.Render(string(cells[pos+1:])))
	}
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(total))

	return b.String()
}
