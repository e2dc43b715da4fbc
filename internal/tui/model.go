package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/convoy/internal/content"
	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/stats"
	"github.com/csheth/convoy/internal/submission"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Stats       stats.Fetcher
	Newsletter  submission.Sender
	Application submission.Sender
	// Timeout bounds each submission when positive.
	Timeout time.Duration
	Logger  *zap.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search the landing page…"
	searchInput.CharLimit = 120
	searchInput.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := &model{
		config:         config,
		logger:         logger,
		stage:          stageBrowse,
		layout:         newPageLayout(),
		searchInput:    searchInput,
		spinner:        spin,
		viewport:       vp,
		store:          forms.NewStore(),
		poller:         stats.New(config.Stats, logger.Named("stats")),
		jobs:           newJobBus(logger),
		sectionAnchors: map[string]int{},
		searchMatchIdx: -1,
		viewportDirty:  true,
		infoMessage:    "Press s for launch updates, a to join the build crew, ? for help.",
	}

	// Controllers only flag the refresh; Update turns it into a poller job.
	refresh := func() { m.refreshRequested = true }
	m.controllers = map[forms.FormID]*submission.Controller{
		forms.Newsletter: submission.New(submission.Config{
			Form:    forms.Newsletter,
			Store:   m.store,
			Send:    config.Newsletter,
			Refresh: refresh,
			Logger:  logger,
			Timeout: config.Timeout,
		}),
		forms.Application: submission.New(submission.Config{
			Form:    forms.Application,
			Store:   m.store,
			Send:    config.Application,
			Refresh: refresh,
			Logger:  logger,
			Timeout: config.Timeout,
		}),
	}
	m.panels = map[forms.FormID]*formPanel{
		forms.Newsletter:  newFormPanel(forms.Newsletter, "Get launch updates"),
		forms.Application: newFormPanel(forms.Application, "Join the build crew"),
	}
	return m
}

type model struct {
	config Config
	logger *zap.Logger
	stage  stage
	layout pageLayout

	searchInput textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model

	store            *forms.Store
	poller           *stats.Poller
	controllers      map[forms.FormID]*submission.Controller
	panels           map[forms.FormID]*formPanel
	activeForm       forms.FormID
	jobs             *jobBus
	refreshRequested bool

	viewportContent string
	viewportDirty   bool
	sectionAnchors  map[string]int
	searchQuery     string
	searchMatches   []matchRange
	searchMatchIdx  int
	infoMessage     string
	errorMessage    string
	helpVisible     bool
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.activateStats())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.markViewportDirty()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.stage {
		case stageSearch:
			return m.handleSearchKey(msg)
		case stageForm:
			return m.handleFormKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	case tea.MouseMsg:
		if m.stage == stageBrowse {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobSignalMsg:
		m.jobs.Track(msg.Snapshot)
		return m, nil
	case jobResultEnvelope:
		m.jobs.Track(msg.Snapshot)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case statsResultMsg:
		m.poller.Resolve(msg.stats, msg.err)
		return m, nil
	case submitResultMsg:
		return m, m.resolveSubmission(msg)
	}
	return m, nil
}

func (m *model) busy() bool {
	if m.poller.State().InFlight() {
		return true
	}
	for _, ctrl := range m.controllers {
		if ctrl.Pending() {
			return true
		}
	}
	return false
}

func (m *model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled := true
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.searchQuery != "" {
			m.clearSearch()
			m.infoMessage = "Cleared search filter."
		}
	case "s":
		return m, m.openForm(forms.Newsletter)
	case "a":
		return m, m.openForm(forms.Application)
	case "r":
		cmd := m.startStatsRefresh()
		if cmd == nil {
			m.infoMessage = "Stats refresh already running."
			return m, nil
		}
		m.infoMessage = "Refreshing live stats…"
		return m, cmd
	case "/":
		m.stage = stageSearch
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()
	case "n":
		m.advanceSearch(1)
	case "N":
		m.advanceSearch(-1)
	case "g":
		m.scrollToTop()
	case "G":
		m.scrollToBottom()
	case "]":
		m.jumpToRelativeSection(1)
	case "[":
		m.jumpToRelativeSection(-1)
	case "?":
		m.helpVisible = !m.helpVisible
		if m.helpVisible {
			m.infoMessage = "Help overlay open. Press ? to hide."
		} else {
			m.infoMessage = "Help overlay hidden."
		}
	default:
		handled = false
	}
	if handled {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

func (m *model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.stage = stageBrowse
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.stage = stageBrowse
		m.applySearch(m.searchInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	return m, cmd
}

func (m *model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	panel := m.panels[m.activeForm]
	ctrl := m.controllers[m.activeForm]
	switch key.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, panel.setFocus(panel.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, panel.setFocus(panel.focus - 1)
	case tea.KeyCtrlS:
		return m, m.submitActiveForm()
	case tea.KeyEnter:
		if panel.onLastField() {
			return m, m.submitActiveForm()
		}
		return m, panel.setFocus(panel.focus + 1)
	}
	if ctrl.Pending() {
		m.infoMessage = pendingEditText
		return m, nil
	}
	field, value, cmd := panel.edit(key)
	if field == "" {
		return m, cmd
	}
	if err := m.store.Set(m.activeForm, field, value); err != nil {
		m.errorMessage = err.Error()
		return m, cmd
	}
	panel.validation = ""
	return m, cmd
}

func (m *model) openForm(form forms.FormID) tea.Cmd {
	m.stage = stageForm
	m.activeForm = form
	m.helpVisible = false
	m.errorMessage = ""
	m.infoMessage = ""
	return m.panels[form].open(m.store.Fields(form))
}

func (m *model) closeForm() {
	if panel, ok := m.panels[m.activeForm]; ok {
		panel.close()
	}
	m.stage = stageBrowse
	m.infoMessage = "Form closed. Your answers stay put."
}

// submitActiveForm runs the required-field gate and, when it passes, hands the
// request to the job bus. Missing fields never reach the controller.
func (m *model) submitActiveForm() tea.Cmd {
	form := m.activeForm
	ctrl := m.controllers[form]
	panel := m.panels[form]
	if ctrl.Pending() {
		m.infoMessage = pendingEditText
		return nil
	}
	fields := m.store.Fields(form)
	if missing := forms.Missing(form, fields); len(missing) > 0 {
		panel.validation = missingLabel(missing)
		return nil
	}
	panel.validation = ""
	req, ok := ctrl.Begin(fields)
	if !ok {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindFor(ctrl), submitJob(ctrl, req)))
}

func (m *model) resolveSubmission(msg submitResultMsg) tea.Cmd {
	ctrl, ok := m.controllers[msg.form]
	if !ok {
		return nil
	}
	state := ctrl.Resolve(msg.outcome)
	if state.Status == submission.Succeeded {
		m.panels[msg.form].load(m.store.Fields(msg.form))
	}
	return m.drainRefresh()
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	prevYOffset := m.viewport.YOffset
	view := buildPageContent(content.Page(), m.wrapWidth(0))
	m.viewportContent = view.content
	m.sectionAnchors = view.anchors

	rendered := view.content
	if m.searchQuery != "" {
		m.searchMatches = findMatches(rendered, m.searchQuery)
		if len(m.searchMatches) == 0 {
			m.searchMatchIdx = -1
		} else if m.searchMatchIdx < 0 || m.searchMatchIdx >= len(m.searchMatches) {
			m.searchMatchIdx = 0
		}
		rendered = highlightMatches(rendered, m.searchMatches, m.searchMatchIdx)
	} else {
		m.searchMatches = nil
		m.searchMatchIdx = -1
	}
	m.viewport.SetContent(applyLineStyles(rendered, view.styled))
	m.viewport.SetYOffset(prevYOffset)
}

func (m *model) jumpToRelativeSection(delta int) {
	m.refreshViewportIfDirty()
	current := m.viewport.YOffset
	if delta > 0 {
		for _, anchor := range sectionSequence {
			line, ok := m.sectionAnchors[anchor]
			if ok && line > current {
				m.jumpToSection(anchor)
				return
			}
		}
		m.infoMessage = "Already at the last section."
		return
	}
	for i := len(sectionSequence) - 1; i >= 0; i-- {
		anchor := sectionSequence[i]
		line, ok := m.sectionAnchors[anchor]
		if ok && line < current {
			m.jumpToSection(anchor)
			return
		}
	}
	m.infoMessage = "Already at the first section."
}

func (m *model) jumpToSection(anchor string) {
	line, ok := m.sectionAnchors[anchor]
	if !ok {
		m.infoMessage = "Section unavailable."
		return
	}
	m.viewport.SetYOffset(line)
	m.infoMessage = fmt.Sprintf("Jumped to %s.", sectionLabel(anchor))
}

func (m *model) scrollToTop() {
	m.viewport.GotoTop()
	m.infoMessage = "Jumped to top."
}

func (m *model) scrollToBottom() {
	m.refreshViewportIfDirty()
	m.viewport.GotoBottom()
	m.infoMessage = "Jumped to bottom."
}

func (m *model) applySearch(query string) {
	query = strings.TrimSpace(query)
	m.searchInput.Blur()
	m.searchQuery = query
	if query == "" {
		m.searchMatches = nil
		m.searchMatchIdx = -1
		m.searchInput.SetValue("")
	} else {
		m.searchMatchIdx = 0
	}
	m.markViewportDirty()
	m.refreshViewportIfDirty()
	switch {
	case query == "":
		m.infoMessage = "Cleared search filter."
	case len(m.searchMatches) == 0:
		m.infoMessage = fmt.Sprintf("No matches for %q.", query)
	default:
		m.infoMessage = fmt.Sprintf("Search ready for %q.", query)
		m.scrollToCurrentMatch()
	}
}

func (m *model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchMatchIdx = -1
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.markViewportDirty()
}

func (m *model) advanceSearch(delta int) {
	if m.searchQuery == "" {
		m.infoMessage = "Start a search with / first."
		return
	}
	if len(m.searchMatches) == 0 {
		m.infoMessage = fmt.Sprintf("No matches for %q.", m.searchQuery)
		return
	}
	count := len(m.searchMatches)
	m.searchMatchIdx = (m.searchMatchIdx + delta) % count
	if m.searchMatchIdx < 0 {
		m.searchMatchIdx += count
	}
	m.infoMessage = fmt.Sprintf("Match %d/%d for %q.", m.searchMatchIdx+1, count, m.searchQuery)
	m.markViewportDirty()
	m.refreshViewportIfDirty()
	m.scrollToCurrentMatch()
}

func (m *model) scrollToCurrentMatch() {
	if len(m.searchMatches) == 0 || m.searchMatchIdx < 0 || m.searchMatchIdx >= len(m.searchMatches) {
		return
	}
	match := m.searchMatches[m.searchMatchIdx]
	line := lineNumberAtOffset(m.viewportContent, match.start)
	target := line - 1
	if target < 0 {
		target = 0
	}
	m.viewport.SetYOffset(target)
}

func (m *model) searchStatusLine() string {
	if m.searchQuery == "" {
		return ""
	}
	if len(m.searchMatches) == 0 {
		return fmt.Sprintf("Search %q · no matches", m.searchQuery)
	}
	return fmt.Sprintf("Search %q · match %d/%d", m.searchQuery, m.searchMatchIdx+1, len(m.searchMatches))
}
