package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/convoy/internal/content"
	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/metrics"
	"github.com/csheth/convoy/internal/stats"
	"github.com/csheth/convoy/internal/submission"
)

// wideHeroWidth is the narrowest terminal that fits the logo and pitch side by side.
const wideHeroWidth = 112

func (m *model) View() string {
	m.refreshViewportIfDirty()
	top := joinNonEmpty([]string{m.heroView(), m.metricsView()})
	bottom := joinNonEmpty(m.lowerParts())
	// Two blank separator lines surround the viewport.
	m.viewport.Height = m.layout.Fit(lipgloss.Height(top) + lipgloss.Height(bottom) + 2)
	return joinNonEmpty([]string{top, m.viewport.View(), bottom})
}

func (m *model) lowerParts() []string {
	var parts []string
	if m.stage == stageSearch {
		parts = append(parts, m.searchView())
	}
	if status := m.searchStatusLine(); status != "" {
		parts = append(parts, helperStyle.Render(status))
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.stage == stageForm {
		parts = append(parts, m.panels[m.activeForm].view(m.controllers[m.activeForm].State()))
	} else {
		parts = append(parts, m.formsSummaryView())
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView(), m.helpView())
	}
	parts = append(parts, m.sessionMeterView())
	return parts
}

func (m *model) heroView() string {
	hero := content.HeroCopy()
	logo := renderLogo()
	pitch := strings.Join([]string{
		heroBadgeStyle.Render(hero.Badge),
		heroTitleStyle.Render(hero.Title),
		wordwrap.String(hero.Subtitle, 40),
	}, "\n")
	if m.layout.windowWidth > 0 && m.layout.windowWidth < wideHeroWidth {
		return lipgloss.JoinVertical(lipgloss.Left, logo, pitch, taglineStyle.Render(heroTagline))
	}
	panel := lipgloss.JoinHorizontal(lipgloss.Top, logo, lipgloss.NewStyle().PaddingLeft(2).Render(pitch))
	return lipgloss.JoinVertical(lipgloss.Left, panel, taglineStyle.Render(heroTagline))
}

func (m *model) metricsView() string {
	header := sectionHeaderStyle.Render("Convoy by the numbers")
	switch state := m.poller.State(); state {
	case stats.Loading, stats.Refreshing:
		header += helperStyle.Render(fmt.Sprintf("  %s %s", m.spinner.View(), state))
	case stats.Failed:
		header += "  " + errorStyle.Render(statsUnavailableText)
	}
	lines := []string{header}
	for _, metric := range metrics.Derive(m.poller.Snapshot(), content.FallbackMetrics()) {
		value := metricValueStyle.Render(fmt.Sprintf("%8s", metric.Value))
		lines = append(lines, value+"  "+metricLabelStyle.Render(metric.Label))
	}
	return metricsBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) searchView() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Search the landing page"))
	b.WriteRune('\n')
	b.WriteString(m.searchInput.View())
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("Press Enter to apply search, Esc to cancel."))
	return b.String()
}

func (m *model) formsSummaryView() string {
	rows := []string{
		formSummaryRow("Launch updates", "s", m.controllers[forms.Newsletter].State()),
		formSummaryRow("Build crew", "a", m.controllers[forms.Application].State()),
	}
	return strings.Join(rows, "\n")
}

func formSummaryRow(title, key string, state submission.State) string {
	row := keyStyle.Render(key) + keyDescStyle.Render(" "+title)
	if line := submissionLine(state); line != "" {
		row += "  " + line
	}
	return row
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) sessionMeterView() string {
	items := []string{
		fmt.Sprintf("Stats %s", strings.ToUpper(m.poller.State().String())),
		fmt.Sprintf("Newsletter %s", m.controllers[forms.Newsletter].State().Status),
		fmt.Sprintf("Application %s", m.controllers[forms.Application].State().Status),
	}
	for _, kind := range m.jobs.Running() {
		items = append(items, fmt.Sprintf("%s…", kind))
	}
	return statusBarStyle.Render(strings.Join(items, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"↑/↓", "Scroll"},
		{"[/]", "Jump sections"},
		{"g/G", "Top or bottom"},
		{"/", "Search"},
		{"n/N", "Next/prev match"},
		{"s", "Launch updates"},
		{"a", "Join the crew"},
		{"r", "Refresh stats"},
		{"?", "Toggle cheatsheet"},
	}
	rows := []string{sectionHeaderStyle.Render("Navigation Cheatsheet")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(fmt.Sprintf(" %-18s", hint.Description))
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("Getting around"),
		helperStyle.Render("• use [ and ] to jump between sections; g / G flies to the top or bottom."),
		helperStyle.Render("• / opens search, n / N cycles matches, and Esc clears the filter."),
		helperStyle.Render("• s opens the launch updates form, a the build crew application."),
		helperStyle.Render("• inside a form Tab moves between fields; Enter on the last field or Ctrl+S submits."),
		helperStyle.Render("• r refreshes the live counters, q or Ctrl+C quits."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
