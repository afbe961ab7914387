// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     explorer
// Description: Main Bubbletea model for the interactive formula explorer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package explorer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/catalog"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/formula"
	"github.com/msto63/chemformula/pkg/core/cache"
	"github.com/msto63/chemformula/pkg/core/version"
)

// Input fields
const (
	FieldFormula = iota
	FieldCharge
	FieldName
	fieldCount
)

var modes = []formula.Mode{formula.ModeOriginal, formula.ModeHill, formula.ModeSum}

// Config holds explorer configuration
type Config struct {
	// Table defaults to the embedded IUPAC table
	Table *elements.Table

	// Store is optional; without it saving and browsing are disabled
	Store catalog.Store

	Propagation   formula.Propagation
	IncludeCharge bool

	// Initial input values
	Formula string
	Charge  int

	Logger *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Propagation:   formula.PropagationLinear,
		IncludeCharge: true,
	}
}

// evaluation is the outcome of building the current input
type evaluation struct {
	formula   *formula.Formula
	mass      formula.Measurement
	weight    formula.Measurement
	fractions map[string]float64
	err       error
}

// evalKey identifies an evaluation in the cache
type evalKey struct {
	text, charge, name string
	propagation        formula.Propagation
}

// Model is the main Bubbletea model for the explorer
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	inputs []textinput.Model
	focus  int

	// Results, memoized per input
	result  evaluation
	results *cache.Cache[evalKey, evaluation]

	// Status line
	status    string
	statusErr bool

	// Catalog browsing, entryIndex -1 means none selected
	entries    []*catalog.Entry
	entryIndex int

	// Configuration
	table         *elements.Table
	store         catalog.Store
	propagation   formula.Propagation
	includeCharge bool
	logger        *mdwlog.Logger
}

// New creates a new explorer model
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	formulaInput := textinput.New()
	formulaInput.Placeholder = "CuSO4*5H2O"
	formulaInput.CharLimit = 256
	formulaInput.Width = 40
	formulaInput.SetValue(cfg.Formula)

	chargeInput := textinput.New()
	chargeInput.Placeholder = "0"
	chargeInput.CharLimit = 12
	chargeInput.Width = 12
	if cfg.Charge != 0 {
		chargeInput.SetValue(strconv.Itoa(cfg.Charge))
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "name for the catalog"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	m := Model{
		inputs:        []textinput.Model{formulaInput, chargeInput, nameInput},
		entryIndex:    -1,
		results:       cache.New[evalKey, evaluation](cache.Config{MaxItems: 256}),
		table:         cfg.Table,
		store:         cfg.Store,
		propagation:   cfg.Propagation,
		includeCharge: cfg.IncludeCharge,
		logger:        logger.WithField("component", "explorer"),
	}
	m.updateFocus()
	m.evaluate()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.store != nil {
		cmds = append(cmds, m.loadCatalog)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.entries = msg.entries
		if m.entryIndex >= len(m.entries) {
			m.entryIndex = -1
		}
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Saved %q to catalog", msg.entry.Name), false)
		return m, m.loadCatalog
	}

	return m.updateInput(msg)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down", "enter":
		m.focus = (m.focus + 1) % fieldCount
		m.updateFocus()
		return m, nil

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.updateFocus()
		return m, nil

	// Uncertainty propagation
	case "ctrl+t":
		if m.propagation == formula.PropagationLinear {
			m.propagation = formula.PropagationQuadrature
		} else {
			m.propagation = formula.PropagationLinear
		}
		m.evaluate()
		return m, nil

	// Charge in rendered output
	case "ctrl+e":
		m.includeCharge = !m.includeCharge
		return m, nil

	// Save to catalog
	case "ctrl+s":
		return m.save()

	// Browse catalog
	case "ctrl+n":
		m.selectEntry(1)
		return m, nil
	case "ctrl+b":
		m.selectEntry(-1)
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused input and re-evaluates on change
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.inputs[m.focus].Value() != before {
		m.entryIndex = -1
		m.status = ""
		m.evaluate()
	}
	return m, cmd
}

func (m *Model) updateFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// evaluate rebuilds the formula from the inputs
func (m *Model) evaluate() {
	key := evalKey{
		text:        m.inputs[FieldFormula].Value(),
		charge:      m.inputs[FieldCharge].Value(),
		name:        m.inputs[FieldName].Value(),
		propagation: m.propagation,
	}
	if ev, ok := m.results.Get(key); ok {
		m.result = ev
		return
	}

	m.result = evaluate(key.text, key.charge, key.name, m.table, key.propagation, m.logger)
	m.results.Set(key, m.result)
}

func evaluate(text, chargeText, name string, table *elements.Table, p formula.Propagation, logger *mdwlog.Logger) evaluation {
	var ev evaluation
	if strings.TrimSpace(text) == "" {
		return ev
	}

	charge := 0
	if s := strings.TrimSpace(chargeText); s != "" {
		c, err := strconv.Atoi(s)
		if err != nil {
			ev.err = mdwerror.Newf("invalid charge %q", chargeText).WithCode(mdwerror.CodeInvalidInput)
			return ev
		}
		charge = c
	}

	f, err := formula.Build(text, formula.Options{
		Charge: charge,
		Name:   strings.TrimSpace(name),
		Table:  table,
		Logger: logger,
	})
	if err != nil {
		ev.err = err
		return ev
	}
	ev.formula = f

	if ev.mass, err = formula.MassWith(f, nil, p); err != nil {
		ev.err = err
		return ev
	}
	ev.weight = ev.mass
	ev.weight.Unit = formula.UnitMolar

	if ev.fractions, err = f.MassFractions(); err != nil {
		ev.err = err
	}
	return ev
}

// save adds the current formula to the catalog
func (m Model) save() (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.setStatus("No catalog configured", true)
		return m, nil
	}
	if m.result.formula == nil {
		m.setStatus("Nothing to save", true)
		return m, nil
	}

	entry := &catalog.Entry{
		Name:   m.inputs[FieldName].Value(),
		Text:   m.result.formula.Text(),
		Charge: m.result.formula.Charge(),
	}
	store := m.store
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := store.Add(ctx, entry)
		return entrySavedMsg{entry: entry, err: err}
	}
}

// loadCatalog loads all catalog entries
func (m Model) loadCatalog() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := m.store.List(ctx)
	return catalogLoadedMsg{entries: entries, err: err}
}

// selectEntry moves through the catalog by delta and loads the entry
func (m *Model) selectEntry(delta int) {
	if len(m.entries) == 0 {
		m.setStatus("Catalog is empty", true)
		return
	}

	n := len(m.entries)
	if m.entryIndex < 0 {
		if delta > 0 {
			m.entryIndex = 0
		} else {
			m.entryIndex = n - 1
		}
	} else {
		m.entryIndex = ((m.entryIndex+delta)%n + n) % n
	}

	e := m.entries[m.entryIndex]
	m.inputs[FieldFormula].SetValue(e.Text)
	m.inputs[FieldCharge].SetValue(strconv.Itoa(e.Charge))
	m.inputs[FieldName].SetValue(e.Name)
	m.setStatus(fmt.Sprintf("Catalog %d/%d: %s", m.entryIndex+1, n, e.Name), false)
	m.evaluate()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInputs())
	b.WriteString("\n")
	b.WriteString(m.renderResult())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and version
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render("v"+version.Explorer),
	)
	return TitlePanelStyle.Render(header)
}

// renderInputs renders the three input fields
func (m Model) renderInputs() string {
	labels := []string{"Formula", "Charge", "Name"}

	lines := make([]string, 0, len(m.inputs))
	for i, input := range m.inputs {
		label := LabelStyle.Render(labels[i])
		if i == m.focus {
			label = FocusedLabelStyle.Render(labels[i])
		}
		lines = append(lines, label+input.View())
	}
	return InputPanelStyle.Render(strings.Join(lines, "\n"))
}

// renderResult renders renderings, masses and fractions, or the error
func (m Model) renderResult() string {
	if m.result.err != nil {
		return ErrorPanelStyle.Render(ErrorStyle.Render(m.result.err.Error()))
	}
	f := m.result.formula
	if f == nil {
		return ResultPanelStyle.Render(HelpDescStyle.Render("Type a formula, e.g. K4Fe(CN)6 or SO4 with charge -2"))
	}

	var sections []string

	sections = append(sections, SectionStyle.Render("Notation"), m.renderNotationTable(f))

	sections = append(sections,
		SectionStyle.Render("Mass"),
		ValueStyle.Render(fmt.Sprintf("%s  (± %g, %s)", m.result.mass, m.result.mass.Uncertainty, m.propagation)),
		ValueStyle.Render(m.result.weight.String()),
		ValueStyle.Render(fmt.Sprintf("%d atoms", f.Atoms())),
	)

	var fractions []string
	for sym := range f.Elements(formula.ModeHill) {
		fractions = append(fractions, fmt.Sprintf("%s %.2f%%", sym, 100*m.result.fractions[sym]))
	}
	sections = append(sections, SectionStyle.Render("Mass fractions"), ValueStyle.Render(strings.Join(fractions, "  ")))

	var flags []string
	if f.IsCharged() {
		flags = append(flags, "charged "+formula.TextCharge(f.Charge()))
	}
	if f.IsRadioactive() {
		flags = append(flags, "radioactive")
	}
	if len(flags) > 0 {
		sections = append(sections, StatusFlagStyle.Render(strings.Join(flags, ", ")))
	}

	return ResultPanelStyle.Render(strings.Join(sections, "\n"))
}

// renderNotationTable renders every renderer in every mode
func (m Model) renderNotationTable(f *formula.Formula) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimmed)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	headers := []string{""}
	for _, mode := range modes {
		headers = append(headers, mode.String())
	}
	t.Headers(headers...)

	for _, r := range formula.Renderers() {
		row := []string{r.String()}
		for _, mode := range modes {
			s, err := formula.Render(f, r, formula.RenderOptions{Mode: mode, IncludeCharge: m.includeCharge})
			if err != nil {
				s = err.Error()
			}
			row = append(row, s)
		}
		t.Row(row...)
	}
	return t.String()
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("propagation: %s  charge in output: %t", m.propagation, m.includeCharge))

	right := HelpDescStyle.Render("no catalog")
	if m.store != nil {
		right = HelpDescStyle.Render(fmt.Sprintf("catalog: %d entries", len(m.entries)))
	}

	content := left + "  " + right
	if m.status != "" {
		style := StatusOKStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		content += "  " + style.Render(m.status)
	}

	width := m.width - 2
	if width < 0 {
		width = 0
	}
	return StatusBarStyle.Width(width).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Tab", "Field"),
		RenderKeyHint("Ctrl+T", "Propagation"),
		RenderKeyHint("Ctrl+E", "Charge"),
		RenderKeyHint("Ctrl+S", "Save"),
		RenderKeyHint("Ctrl+N/B", "Catalog"),
		RenderKeyHint("Esc", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the explorer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
