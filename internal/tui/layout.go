package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/convoy/internal/content"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
}

// Fit sizes the page viewport into whatever the surrounding chrome leaves.
// Before the first resize the default height is kept.
func (l *pageLayout) Fit(chromeHeight int) int {
	if l.windowHeight <= 0 {
		return l.viewportHeight
	}
	height := l.windowHeight - chromeHeight
	if height < minViewportHeight {
		height = minViewportHeight
	}
	l.viewportHeight = height
	return height
}

type lineKind int

const (
	lineSectionHeading lineKind = iota + 1
	lineBlockHeading
)

// displayView is the unstyled page plus the lines that get styled after
// search highlighting, so matches never land inside escape codes.
type displayView struct {
	content string
	anchors map[string]int
	styled  map[int]lineKind
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func buildPageContent(sections []content.Section, width int) displayView {
	cb := &contentBuilder{}
	anchors := map[string]int{}
	styled := map[int]lineKind{}
	bodyWrap := width - 2
	bulletWrap := width - 4
	if bodyWrap < 20 {
		bodyWrap = 20
	}
	if bulletWrap < 20 {
		bulletWrap = 20
	}

	renderBullets := func(items []string) {
		for _, item := range items {
			cb.WriteString(" • ")
			cb.WriteString(indentMultiline(wordwrap.String(item, bulletWrap), "   ")[3:])
			cb.WriteRune('\n')
		}
	}

	for _, section := range sections {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		anchors[section.Anchor] = cb.Line()
		styled[cb.Line()] = lineSectionHeading
		cb.WriteString(section.Title)
		cb.WriteRune('\n')
		if section.Intro != "" {
			cb.WriteString(wordwrap.String(section.Intro, bodyWrap))
			cb.WriteRune('\n')
		}
		for _, block := range section.Blocks {
			if block.Heading != "" {
				styled[cb.Line()] = lineBlockHeading
				cb.WriteString(block.Heading)
				cb.WriteRune('\n')
			}
			if block.Body != "" {
				cb.WriteString(indentMultiline(wordwrap.String(block.Body, bulletWrap), "  "))
				cb.WriteRune('\n')
			}
			renderBullets(block.Items)
		}
	}
	return displayView{content: strings.TrimRight(cb.String(), "\n"), anchors: anchors, styled: styled}
}

func applyLineStyles(content string, styled map[int]lineKind) string {
	if len(styled) == 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for idx, kind := range styled {
		if idx < 0 || idx >= len(lines) {
			continue
		}
		switch kind {
		case lineSectionHeading:
			lines[idx] = sectionHeaderStyle.Render(lines[idx])
		case lineBlockHeading:
			lines[idx] = blockHeadingStyle.Render(lines[idx])
		}
	}
	return strings.Join(lines, "\n")
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

type matchRange struct {
	start int
	end   int
}

func findMatches(content, query string) []matchRange {
	lowerContent := strings.ToLower(content)
	lowerQuery := strings.ToLower(query)
	if lowerQuery == "" {
		return nil
	}
	var matches []matchRange
	searchIdx := 0
	for {
		idx := strings.Index(lowerContent[searchIdx:], lowerQuery)
		if idx == -1 {
			break
		}
		start := searchIdx + idx
		end := start + len(lowerQuery)
		matches = append(matches, matchRange{start: start, end: end})
		searchIdx = end
		if searchIdx >= len(content) {
			break
		}
	}
	return matches
}

func highlightMatches(content string, matches []matchRange, current int) string {
	if len(matches) == 0 {
		return content
	}
	var b strings.Builder
	pos := 0
	for idx, match := range matches {
		if match.start > len(content) {
			break
		}
		if match.start > pos {
			b.WriteString(content[pos:match.start])
		}
		segmentEnd := match.end
		if segmentEnd > len(content) {
			segmentEnd = len(content)
		}
		segment := content[match.start:segmentEnd]
		if idx == current {
			b.WriteString(searchCurrentStyle.Render(segment))
		} else {
			b.WriteString(searchHighlightStyle.Render(segment))
		}
		pos = segmentEnd
	}
	if pos < len(content) {
		b.WriteString(content[pos:])
	}
	return b.String()
}

func lineNumberAtOffset(content string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(content) {
		offset = len(content)
	}
	return strings.Count(content[:offset], "\n")
}

func sectionLabel(anchor string) string {
	for _, section := range content.Page() {
		if section.Anchor == anchor {
			return section.Title
		}
	}
	return "section"
}
