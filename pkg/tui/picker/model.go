// Package picker implements the interactive record selection dialog: a
// checkbox list of discovered records with search-as-you-type filtering
// and optional date-range inputs, producing a merged timekeep on confirm.
//
// All dialog state (selection set, query, date range) lives on the model
// and every event produces a new state snapshot through Update; nothing is
// mutated behind the view's back.
package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/timekeep/pkg/merge"
	"tableflip.dev/timekeep/pkg/vault"
)

type focusField int

const (
	focusList focusField = iota
	focusSearch
	focusFrom
	focusTo
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the root bubbletea model for the record picker dialog.
type Model struct {
	vaultRoot string
	location  *time.Location
	events    <-chan vault.Event

	loading  bool
	loadErr  string
	records  []vault.Record
	visible  []int // indexes into records after the query filter
	selected map[string]bool

	cursor int
	focus  focusField

	search textinput.Model
	from   textinput.Model
	to     textinput.Model

	status string

	width  int
	height int

	done     bool
	canceled bool
	result   []merge.FlatEntry
}

// New constructs the dialog for the given vault. events may be nil; when
// provided the record list refreshes whenever the vault changes on disk.
func New(vaultRoot string, loc *time.Location, events <-chan vault.Event) Model {
	search := textinput.New()
	search.Placeholder = "filter by document path"
	search.Prompt = "/ "

	from := textinput.New()
	from.Placeholder = "YYYY-MM-DD"
	from.Prompt = "from "
	from.CharLimit = 10

	to := textinput.New()
	to.Placeholder = "YYYY-MM-DD"
	to.Prompt = "to "
	to.CharLimit = 10

	return Model{
		vaultRoot: vaultRoot,
		location:  loc,
		events:    events,
		loading:   true,
		selected:  map[string]bool{},
		search:    search,
		from:      from,
		to:        to,
		width:     80,
		height:    24,
	}
}

// Init kicks off the initial vault scan and, when available, the change
// listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{scanCmd(m.vaultRoot)}
	if m.events != nil {
		cmds = append(cmds, waitForChange(m.events))
	}
	return tea.Batch(cmds...)
}

func scanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		records, err := vault.Scan(context.Background(), root)
		if err != nil {
			return scanErrorMsg{Err: err}
		}
		return recordsLoadedMsg{Records: records}
	}
}

func waitForChange(events <-chan vault.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watchClosedMsg{}
		}
		return vaultChangedMsg{}
	}
}

// Update handles one message and returns the next state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordsLoadedMsg:
		m.loading = false
		m.loadErr = ""
		m.selected = reselect(m.records, m.selected, msg.Records)
		m.records = msg.Records
		m.refilter()
		return m, nil

	case scanErrorMsg:
		m.loading = false
		m.loadErr = "failed to load entries: " + msg.Err.Error()
		return m, nil

	case vaultChangedMsg:
		return m, tea.Batch(scanCmd(m.vaultRoot), waitForChange(m.events))

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.canceled = true
		m.done = true
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearchKey(msg)
	case focusFrom, focusTo:
		return m.updateRangeKey(msg)
	}
	return m.updateListKey(msg)
}

func (m Model) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.canceled = true
		m.done = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case " ":
		if rec, ok := m.recordUnderCursor(); ok {
			m.selected[rec.ID] = !m.selected[rec.ID]
		}

	case "a":
		all := true
		for _, i := range m.visible {
			if !m.selected[m.records[i].ID] {
				all = false
				break
			}
		}
		for _, i := range m.visible {
			m.selected[m.records[i].ID] = !all
		}

	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()

	case "d":
		m.focus = focusFrom
		return m, m.from.Focus()

	case "enter":
		return m.create()
	}
	return m, nil
}

func (m Model) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focus = focusList
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) updateRangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focus = focusList
		m.from.Blur()
		m.to.Blur()
		return m, nil
	case "tab", "shift+tab":
		if m.focus == focusFrom {
			m.focus = focusTo
			m.from.Blur()
			return m, m.to.Focus()
		}
		m.focus = focusFrom
		m.to.Blur()
		return m, m.from.Focus()
	}

	var cmd tea.Cmd
	if m.focus == focusFrom {
		m.from, cmd = m.from.Update(msg)
	} else {
		m.to, cmd = m.to.Update(msg)
	}
	return m, cmd
}

// create runs the merge engine over the selected records. Engine errors
// keep the dialog open with a one-line notice; success closes it with the
// merged result.
func (m Model) create() (tea.Model, tea.Cmd) {
	var chosen []vault.Record
	for _, r := range m.records {
		if m.selected[r.ID] {
			chosen = append(chosen, r)
		}
	}

	result, err := merge.Build(chosen, merge.Range{
		From:     strings.TrimSpace(m.from.Value()),
		To:       strings.TrimSpace(m.to.Value()),
		Location: m.location,
	})
	if err != nil {
		m.status = notice(err)
		return m, nil
	}

	m.result = result
	m.done = true
	return m, tea.Quit
}

// notice translates engine errors into the dialog's one-line messages.
func notice(err error) string {
	switch {
	case errors.Is(err, merge.ErrIncompleteRange):
		return "Provide both dates or neither"
	case errors.Is(err, merge.ErrInvertedRange):
		return "Start date must not be after end date"
	case errors.Is(err, merge.ErrNoEntries):
		return "Nothing to merge: no entries matched"
	default:
		return err.Error()
	}
}

func (m *Model) refilter() {
	query := m.search.Value()
	m.visible = m.visible[:0]
	for i, r := range m.records {
		if query == "" || strings.Contains(strings.ToLower(r.SourcePath), strings.ToLower(query)) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// reselect carries the selection across a rescan. Discovery mints fresh
// ids every scan, so selections are re-keyed by (path, ordinal); records
// that disappeared simply drop out.
func reselect(old []vault.Record, selected map[string]bool, fresh []vault.Record) map[string]bool {
	type key struct {
		path    string
		ordinal int
	}
	chosen := map[key]bool{}
	for _, r := range old {
		if selected[r.ID] {
			chosen[key{r.SourcePath, r.Ordinal}] = true
		}
	}
	next := map[string]bool{}
	for _, r := range fresh {
		if chosen[key{r.SourcePath, r.Ordinal}] {
			next[r.ID] = true
		}
	}
	return next
}

// Result returns the merged entries and whether the dialog was canceled.
func (m Model) Result() ([]merge.FlatEntry, bool) {
	return m.result, m.canceled || m.result == nil
}

// SelectedCount reports how many records are currently ticked.
func (m Model) SelectedCount() int {
	n := 0
	for _, ok := range m.selected {
		if ok {
			n++
		}
	}
	return n
}

func (m Model) recordUnderCursor() (vault.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return vault.Record{}, false
	}
	return m.records[m.visible[m.cursor]], true
}

// View renders the dialog.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Merge timekeep records"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(faintStyle.Render("Scanning vault..."))
		b.WriteString("\n")
		return b.String()
	}
	if m.loadErr != "" {
		b.WriteString(errorStyle.Render(m.loadErr))
		b.WriteString("\n")
		return b.String()
	}

	if m.focus == focusSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.focus == focusFrom || m.focus == focusTo || m.from.Value() != "" || m.to.Value() != "" {
		b.WriteString(m.from.View())
		b.WriteString("   ")
		b.WriteString(m.to.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(faintStyle.Render(" no records"))
		b.WriteString("\n")
	}

	maxName := uint(m.width - 12)
	for pos, i := range m.visible {
		r := m.records[i]

		cursor := "  "
		if pos == m.cursor && m.focus == focusList {
			cursor = cursorStyle.Render("> ")
		}

		check := "[ ]"
		if m.selected[r.ID] {
			check = checkStyle.Render("[x]")
		}

		label := fmt.Sprintf("%s #%d", r.SourcePath, r.Ordinal+1)
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, truncate.StringWithTail(label, maxName, "…")))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := "space select · a all · / search · d dates · enter create · esc cancel"
	b.WriteString(faintStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
