package commands

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/runner"
)

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackOK
	feedbackPending
	feedbackError
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	helpStyle     = lipgloss.NewStyle().Italic(true)
)

const maxSuggestions = 6

// shellModel is the terminal UI of the shell. Each submitted line goes
// through the engine; the views are redrawn from the service afterwards.
type shellModel struct {
	ctx    context.Context
	book   *book
	engine *runner.Engine

	prompt textinput.Model

	usages          []parser.Usage
	filtered        []parser.Usage
	suggestionIndex int
	original        string

	feedback string
	kind     feedbackKind
	showHelp bool

	width int

	// err is a save failure; it stops the program.
	err error
}

func newShellModel(ctx context.Context, b *book, engine *runner.Engine) shellModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a command, tab to complete"
	ti.CharLimit = 512
	ti.Focus()

	m := shellModel{
		ctx:             ctx,
		book:            b,
		engine:          engine,
		prompt:          ti,
		usages:          parser.Usages(),
		suggestionIndex: -1,
	}
	m.applySuggestionFilter(true)
	return m
}

func (m shellModel) Init() tea.Cmd { return nil }

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.prompt.SetWidth(max(msg.Width-4, 10))
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "esc":
			if m.clearSuggestionSelection() {
				return m, nil
			}
			m.showHelp = false
			m.prompt.SetValue("")
			m.applySuggestionFilter(true)
			return m, nil
		case "tab":
			m.complete()
			return m, nil
		case "down":
			m.cycleSuggestion(1)
			return m, nil
		case "up", "shift+tab":
			m.cycleSuggestion(-1)
			return m, nil
		}
	}

	before := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.Value() != before {
		m.applySuggestionFilter(true)
	}
	return m, cmd
}

// submit runs the line in the prompt. Command errors stay on screen; only a
// failed save ends the program.
func (m shellModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.prompt.Value())
	m.prompt.SetValue("")
	m.applySuggestionFilter(true)
	if line == "" {
		return m, nil
	}

	res, err := m.engine.ExecuteLine(line)
	if err != nil {
		m.feedback, m.kind = err.Error(), feedbackError
		return m, nil
	}
	m.feedback, m.kind = res.Feedback, feedbackOK
	if res.NeedsConfirmation {
		m.kind = feedbackPending
	}
	if res.RefreshView {
		if err := m.book.save(m.ctx); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	m.showHelp = res.ShowHelp
	if res.Exit {
		return m, tea.Quit
	}
	return m, nil
}

// keyword is the part of the prompt suggestions apply to. Once a space is
// typed the keyword is settled.
func (m *shellModel) keyword() (string, bool) {
	v := m.prompt.Value()
	if strings.ContainsRune(v, ' ') {
		return "", false
	}
	return v, true
}

func (m *shellModel) applySuggestionFilter(reset bool) {
	value, ok := m.keyword()
	if !ok {
		m.filtered = nil
		m.suggestionIndex = -1
		return
	}
	m.filtered = filterUsages(m.usages, value)
	if reset {
		m.suggestionIndex = -1
		m.original = value
	}
}

// filterUsages returns usages whose keyword starts with value, followed by
// those that merely contain it.
func filterUsages(usages []parser.Usage, value string) []parser.Usage {
	prefix := strings.TrimSpace(strings.ToLower(value))
	if prefix == "" {
		return append([]parser.Usage(nil), usages...)
	}
	matches := make([]parser.Usage, 0, len(usages))
	seen := make(map[string]struct{}, len(usages))
	for _, u := range usages {
		if strings.HasPrefix(strings.ToLower(u.Keyword), prefix) {
			matches = append(matches, u)
			seen[u.Keyword] = struct{}{}
		}
	}
	for _, u := range usages {
		if _, ok := seen[u.Keyword]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(u.Keyword), prefix) {
			matches = append(matches, u)
		}
	}
	return matches
}

func (m *shellModel) cycleSuggestion(delta int) bool {
	total := len(m.filtered)
	if total == 0 {
		return false
	}
	if m.suggestionIndex == -1 {
		if delta > 0 {
			m.suggestionIndex = 0
		} else {
			m.suggestionIndex = total - 1
		}
		m.original = m.prompt.Value()
	} else {
		m.suggestionIndex = (m.suggestionIndex + delta) % total
		if m.suggestionIndex < 0 {
			m.suggestionIndex += total
		}
	}
	m.prompt.SetValue(m.filtered[m.suggestionIndex].Keyword)
	m.prompt.CursorEnd()
	return true
}

func (m *shellModel) clearSuggestionSelection() bool {
	if m.suggestionIndex == -1 {
		return false
	}
	m.prompt.SetValue(m.original)
	m.prompt.CursorEnd()
	m.suggestionIndex = -1
	return true
}

// complete fills in the selected keyword, or the best match, and moves on to
// the arguments.
func (m *shellModel) complete() {
	if len(m.filtered) == 0 {
		return
	}
	i := m.suggestionIndex
	if i < 0 {
		i = 0
	}
	m.prompt.SetValue(m.filtered[i].Keyword + " ")
	m.prompt.CursorEnd()
	m.applySuggestionFilter(true)
}

func (m shellModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("weddingbook"))
	b.WriteString("\n")
	b.WriteString(m.viewBook())
	b.WriteString("\n")

	if m.showHelp {
		var help bytes.Buffer
		m.book.printer(&help).Help(m.usages)
		b.WriteString(helpStyle.Render(strings.TrimRight(help.String(), "\n")))
		b.WriteString("\n")
	}

	if m.feedback != "" {
		b.WriteString(m.viewFeedback())
		b.WriteString("\n")
	}
	b.WriteString(m.prompt.View())
	b.WriteString("\n")
	b.WriteString(m.viewSuggestions())
	return b.String()
}

func (m shellModel) viewBook() string {
	var persons, weddings bytes.Buffer
	pp := m.book.printer(&persons)
	pp.Persons(m.engine.Service().Persons().Items())
	pp = m.book.printer(&weddings)
	pp.Weddings(m.engine.Service().Weddings().Items())

	left := panelStyle.Render(strings.TrimRight(persons.String(), "\n"))
	right := panelStyle.Render(strings.TrimRight(weddings.String(), "\n"))
	if m.width > 0 && lipgloss.Width(left)+lipgloss.Width(right) <= m.width {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

func (m shellModel) viewFeedback() string {
	switch m.kind {
	case feedbackError:
		return errorStyle.Render(m.feedback)
	case feedbackPending:
		return pendingStyle.Render(m.feedback)
	default:
		return okStyle.Render(m.feedback)
	}
}

func (m shellModel) viewSuggestions() string {
	if len(m.filtered) == 0 || m.prompt.Value() == "" {
		return hintStyle.Render("tab complete · ↑/↓ choose · esc clear · help lists commands")
	}
	lines := make([]string, 0, maxSuggestions)
	start := 0
	if m.suggestionIndex >= maxSuggestions {
		start = m.suggestionIndex - maxSuggestions + 1
	}
	for i := start; i < len(m.filtered) && i < start+maxSuggestions; i++ {
		u := m.filtered[i]
		line := u.Format + "  " + hintStyle.Render(u.Description)
		if i == m.suggestionIndex {
			lines = append(lines, selectedStyle.Render("→ ")+line)
		} else {
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// runShellUI runs the shell as a full screen program and reports a failed
// save once the program has stopped.
func runShellUI(ctx context.Context, b *book) error {
	p := tea.NewProgram(newShellModel(ctx, b, b.engine()), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(shellModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
