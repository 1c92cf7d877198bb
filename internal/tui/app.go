// Package tui is the interactive projection screen. A huh form collects the
// bill; after that every keystroke in a projection field and every series
// toggle re-derives the projection from the session state.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rateproj/rate-projector/internal/calculation"
	"github.com/rateproj/rate-projector/internal/config"
	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/rateproj/rate-projector/internal/session"
)

type screen int

const (
	screenBill screen = iota
	screenProjection
)

// Projection input fields, in focus order.
const (
	fieldComparisonRate = iota
	fieldBaselineGrowth
	fieldComparisonGrowth
	fieldHorizon
	fieldCount // sentinel
)

// Series toggles follow the inputs in the focus ring.
const (
	toggleSavings = fieldCount + iota
	toggleBaseline
	toggleComparison
	focusCount // sentinel
)

// Options configures a new Model.
type Options struct {
	Settings config.Settings

	// State may already hold a baseline, in which case the bill form is skipped.
	State session.State

	// Comparison pre-fills the comparison rate field.
	Comparison string

	Logger calculation.Logger
}

// Model is the bubbletea model for the interactive calculator.
type Model struct {
	screen   screen
	state    session.State
	settings config.Settings
	engine   *calculation.Engine

	billForm *huh.Form
	bill     *config.FormInput
	billErr  error

	inputs [fieldCount]textinput.Model
	focus  int
	series calculation.SeriesSelection

	// report is the last successful derivation; input errors leave it in place
	report   *domain.ProjectionReport
	inputErr error

	width  int
	height int
}

// New creates the model. Without a baseline in opts.State the bill form is
// shown first.
func New(opts Options) Model {
	engine := calculation.NewEngine()
	engine.SetLogger(opts.Logger)

	defaults := opts.Settings.FormDefaults()
	m := Model{
		state:    opts.State,
		settings: opts.Settings,
		engine:   engine,
		bill:     &config.FormInput{},
		series:   calculation.AllSeries(),
	}
	if in := opts.State.Input(); opts.State.HasBaseline() {
		m.bill.MonthlyDollars = in.MonthlyDollars.String()
		if in.MonthlyUsage != nil {
			m.bill.MonthlyUsage = in.MonthlyUsage.String()
		}
		if in.AnnualUsage != nil {
			m.bill.AnnualUsage = in.AnnualUsage.String()
		}
	}

	m.inputs[fieldComparisonRate] = newProjectionInput("0.09 ($ per "+opts.Settings.Unit+")", opts.Comparison)
	m.inputs[fieldBaselineGrowth] = newProjectionInput("3.5 (%/yr)", defaults.BaselineGrowthPercent)
	m.inputs[fieldComparisonGrowth] = newProjectionInput("0 (%/yr, may be negative)", defaults.ComparisonGrowthPercent)
	m.inputs[fieldHorizon] = newProjectionInput("25 (years)", defaults.HorizonYears)
	m.inputs[fieldHorizon].CharLimit = 3
	m.inputs[fieldComparisonRate].Focus()

	if m.state.HasBaseline() {
		m.screen = screenProjection
		m.recompute()
	} else {
		m.screen = screenBill
		m.billForm = newBillForm(m.bill, opts.Settings.Unit)
	}
	return m
}

func newProjectionInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Width = 28
	ti.SetValue(value)
	return ti
}

// Report returns the projection currently on screen, or nil.
func (m Model) Report() *domain.ProjectionReport { return m.report }

// State returns the session state behind the screen.
func (m Model) State() session.State { return m.state }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.screen == screenBill {
		return m.billForm.Init()
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.billForm != nil {
			m.billForm = m.billForm.WithWidth(m.width)
		}
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.screen == screenBill {
		return m.updateBillForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.focus < fieldCount {
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
		return m, cmd
	}

	switch key.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus - 1 + focusCount) % focusCount)
	case "ctrl+e":
		m.screen = screenBill
		m.billErr = nil
		m.billForm = newBillForm(m.bill, m.settings.Unit)
		if m.width > 0 {
			m.billForm = m.billForm.WithWidth(m.width)
		}
		return m, m.billForm.Init()
	case " ", "enter", "x":
		if m.focus >= fieldCount {
			m.toggle(m.focus)
			return m, nil
		}
	}

	if m.focus >= fieldCount {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for f := range m.inputs {
		if f == i {
			cmd = m.inputs[f].Focus()
		} else {
			m.inputs[f].Blur()
		}
	}
	return cmd
}

func (m *Model) toggle(i int) {
	switch i {
	case toggleSavings:
		m.series.Savings = !m.series.Savings
	case toggleBaseline:
		m.series.Baseline = !m.series.Baseline
	case toggleComparison:
		m.series.Comparison = !m.series.Comparison
	}
}

func (m Model) updateBillForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.billForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.billForm = f
	}

	if m.billForm.State == huh.StateCompleted {
		return m.submitBill()
	}

	if m.billForm.State == huh.StateAborted {
		m.billForm = nil
		if !m.state.HasBaseline() {
			return m, tea.Quit
		}
		m.screen = screenProjection
		return m, nil
	}

	return m, cmd
}

// submitBill parses the bill fields and recalculates the baseline. A
// rejected bill reopens the form with the error shown above it.
func (m Model) submitBill() (tea.Model, tea.Cmd) {
	billing, err := config.ParseBilling(*m.bill)
	if err == nil {
		m.state, err = m.state.Recalculate(billing)
	}
	if err != nil {
		m.billErr = err
		m.billForm = newBillForm(m.bill, m.settings.Unit)
		if m.width > 0 {
			m.billForm = m.billForm.WithWidth(m.width)
		}
		return m, m.billForm.Init()
	}

	m.billErr = nil
	m.billForm = nil
	m.screen = screenProjection
	m.recompute()
	return m, m.setFocus(m.focus)
}

func (m Model) projectionForm() config.FormInput {
	return config.FormInput{
		ComparisonRate:          m.inputs[fieldComparisonRate].Value(),
		BaselineGrowthPercent:   m.inputs[fieldBaselineGrowth].Value(),
		ComparisonGrowthPercent: m.inputs[fieldComparisonGrowth].Value(),
		HorizonYears:            m.inputs[fieldHorizon].Value(),
	}
}

// recompute derives the projection from the current fields. Invalid input
// keeps the previous projection on screen next to the error.
func (m *Model) recompute() {
	params, err := config.ParseProjection(m.projectionForm())
	if err != nil {
		m.inputErr = err
		return
	}

	projection, err := m.state.Derive(params)
	switch {
	case errors.Is(err, session.ErrNoBaseline):
		m.report = nil
		m.inputErr = nil
	case err != nil:
		m.inputErr = err
	default:
		m.report = m.engine.Assemble(projection, m.settings.Unit, m.settings.MilestoneStep)
		m.inputErr = nil
	}
}
