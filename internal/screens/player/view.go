package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/replayz/internal/replay"
	"github.com/abhisek/replayz/internal/ui/components"
	"github.com/abhisek/replayz/internal/ui/theme"
)

func (s *PlayerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded || s.engine == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n" + s.spin.View() + " Loading session...")
	}

	timeline := s.renderTimeline(width)
	timelineHeight := lipgloss.Height(timeline)

	infoLine := s.renderInfoLine(width)
	infoHeight := lipgloss.Height(infoLine)

	paneHeight := height - timelineHeight - infoHeight - 1
	if paneHeight < 3 {
		paneHeight = 3
	}

	codeWidth := width * 3 / 5
	panelWidth := width - codeWidth - 1

	codePane := s.renderCodePane(codeWidth, paneHeight)
	tutorPane := s.renderTutorPane(panelWidth, paneHeight)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, codePane, " ", tutorPane)

	return infoLine + "\n" + panes + "\n" + timeline
}

// renderInfoLine shows the active task, its progress, and the latest error.
func (s *PlayerScreen) renderInfoLine(width int) string {
	snap := s.snap

	taskName := fmt.Sprintf("Task %d", snap.ActiveTask+1)
	if t := s.lesson.TaskAt(snap.ActiveTask); t != nil {
		taskName = fmt.Sprintf("Task %d: %s", snap.ActiveTask+1, t.Title)
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + taskName)

	right := ""
	if p, ok := latestProgressFor(snap, snap.ActiveTask); ok {
		pct := 0.0
		if p.TotalTestCases > 0 {
			pct = float64(p.TestCasesPassed) / float64(p.TotalTestCases)
		}
		bar := components.NewProgressBar("", pct, false, 16).View()
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.Completed {
			style = theme.Passed
		}
		right = bar + "  " + style.Render(fmt.Sprintf("tests %d/%d  attempts %d",
			p.TestCasesPassed, p.TotalTestCases, p.Attempts))
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

// renderCodePane shows the editor contents at the cursor, falling back to
// the task's starter template before the first snapshot.
func (s *PlayerScreen) renderCodePane(width, height int) string {
	snap := s.snap

	code := snap.Code
	dimmed := false
	if !snap.HasCode {
		code = s.lesson.TemplateFor(snap.ActiveTask)
		dimmed = true
		if code == "" {
			code = "(no code yet)"
		}
	}

	highlighted := map[int]bool{}
	for _, h := range snap.TutorPanel.Highlights {
		highlighted[h.Value.LineNumber] = true
	}

	lines := strings.Split(code, "\n")
	if len(lines) > height-2 {
		lines = lines[len(lines)-(height-2):]
	}

	var b strings.Builder
	for i, line := range lines {
		num := i + 1
		numStr := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%3d ", num))
		lineStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if dimmed {
			lineStyle = lineStyle.Foreground(theme.TextDim)
		}
		if highlighted[num] {
			lineStyle = lineStyle.Background(theme.BgCard).Foreground(theme.Accent)
		}
		b.WriteString(numStr + lineStyle.Render(line) + "\n")
	}

	// Latest code error, if any.
	if len(snap.CodeErrors) > 0 {
		last := snap.CodeErrors[len(snap.CodeErrors)-1]
		b.WriteString("\n" + theme.Failed.Render(truncate(last.Value.Message, width-6)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())
}

// renderTutorPane shows the tutor panel: conversation state and the chat
// transcript up to the cursor.
func (s *PlayerScreen) renderTutorPane(width, height int) string {
	panel := s.snap.TutorPanel

	var b strings.Builder

	if !panel.Open {
		b.WriteString(theme.Hint.Render("Tutor panel closed") + "\n\n")
	}

	switch {
	case panel.Conversation == nil:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ no conversation") + "\n")
	case panel.Speaking == replay.SpeakingSpeaking:
		b.WriteString(theme.Speaking.Render("● tutor speaking") + "\n")
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("◌ tutor listening") + "\n")
	}

	if s.audioCtl != nil && s.audioCtl.Fetching() {
		b.WriteString("  " + s.spin.View() + theme.Hint.Render(" fetching audio...") + "\n")
	}
	b.WriteString("\n")

	// Chat transcript tail.
	msgs := s.snap.Messages
	maxMsgs := (height - 6) / 2
	if maxMsgs < 1 {
		maxMsgs = 1
	}
	if len(msgs) > maxMsgs {
		msgs = msgs[len(msgs)-maxMsgs:]
	}
	for _, m := range msgs {
		who := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("tutor")
		if m.Value.Role == replay.RoleUser {
			who = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("you")
		}
		stamp := lipgloss.NewStyle().Foreground(theme.TextDim).Render(components.FormatOffset(m.OffsetMs))
		b.WriteString(who + " " + stamp + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(truncate(m.Value.Content, width-4)) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())
}

func (s *PlayerScreen) renderTimeline(width int) string {
	cur := s.engine.Cursor()

	var markers []int64
	for _, c := range s.engine.Streams().Conversations() {
		markers = append(markers, c.StartMs)
	}

	tl := components.Timeline{
		PositionMs: cur.TimeMs(),
		DurationMs: cur.DurationMs(),
		MarkerMs:   markers,
		Scrubbing:  cur.Scrubbing(),
		Width:      width - 4,
	}
	return "  " + tl.View()
}

// latestProgressFor returns the most recent progress entry for one task.
func latestProgressFor(snap replay.Snapshot, task int) (replay.TaskProgressEntry, bool) {
	for i := len(snap.TaskProgress) - 1; i >= 0; i-- {
		if snap.TaskProgress[i].Value.TaskIndex == task {
			return snap.TaskProgress[i].Value, true
		}
	}
	return replay.TaskProgressEntry{}, false
}

func truncate(s string, n int) string {
	if n < 1 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
