/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tui renders a terminal dashboard from a dashboard.Store.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/netwatch/pkg/dashboard"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	defaultTableHeight = 8
	maxAnomalyLines    = 5
)

var errNoSelection = errors.New("nothing selected")

// Actions are the operations that need the core API.
type Actions interface {
	SelectDevice(ctx context.Context, deviceID int64) error
	AcknowledgeAlert(ctx context.Context, id int64) error
}

type pane int

const (
	paneDevices pane = iota
	paneAlerts
)

type stateChangedMsg struct{}

type actionDoneMsg struct {
	status string
	err    error
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	ctx     context.Context
	store   *dashboard.Store
	actions Actions
	copy    func(string) error

	state     dashboard.State
	devices   table.Model
	alerts    table.Model
	search    textinput.Model
	searching bool
	focus     pane

	status string
	err    error
	styles styles
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// New builds the model. ctx bounds the API calls made from key handlers.
func New(ctx context.Context, store *dashboard.Store, actions Actions, opts ...Option) *Model {
	search := textinput.New()
	search.Placeholder = "hostname or IP"
	search.Prompt = "/ "
	search.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))

	m := &Model{
		ctx:     ctx,
		store:   store,
		actions: actions,
		copy:    clipboard.WriteAll,
		devices: table.New(
			table.WithColumns(deviceColumns()),
			table.WithHeight(defaultTableHeight),
			table.WithFocused(true),
		),
		alerts: table.New(
			table.WithColumns(alertColumns()),
			table.WithHeight(defaultTableHeight),
		),
		search: search,
		styles: newStyles(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.refresh()

	return m
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes

		return stateChangedMsg{}
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForChange(m.store.Changes())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.refresh()

		return m, waitForChange(m.store.Changes())
	case actionDoneMsg:
		m.status, m.err = msg.status, msg.err

		return m, nil
	case tea.WindowSizeMsg:
		height := max((msg.Height-16)/2, 3)
		m.devices.SetHeight(height)
		m.alerts.SetHeight(height)

		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}

		return m.handleKey(msg)
	}

	return m, nil
}

// refresh copies the store into the tables.
func (m *Model) refresh() {
	m.state = m.store.Snapshot()

	setRows(&m.devices, deviceRows(&m.state))
	setRows(&m.alerts, alertRows(&m.state))
}

func setRows(t *table.Model, rows []table.Row) {
	t.SetRows(rows)

	if t.Cursor() >= len(rows) {
		t.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.toggleFocus()

		return m, nil
	case "/":
		m.searching = true
		m.search.SetValue(m.state.Search)
		m.search.Focus()

		return m, textinput.Blink
	case "f":
		m.store.SetStatusFilter(nextFilter(m.state.StatusFilter))
		m.refresh()

		return m, nil
	case "esc":
		m.store.ClearSelection()
		m.store.SetSearch("")
		m.refresh()

		return m, nil
	case "enter":
		if m.focus == paneDevices {
			return m, m.selectDevice()
		}
	case "a":
		if m.focus == paneAlerts {
			return m, m.acknowledgeAlert()
		}
	case "c":
		m.copyIP()

		return m, nil
	}

	var cmd tea.Cmd

	if m.focus == paneDevices {
		m.devices, cmd = m.devices.Update(msg)
	} else {
		m.alerts, cmd = m.alerts.Update(msg)
	}

	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()

		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.store.SetSearch("")
		m.refresh()

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.store.SetSearch(m.search.Value())
	m.refresh()

	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == paneDevices {
		m.focus = paneAlerts
		m.devices.Blur()
		m.alerts.Focus()

		return
	}

	m.focus = paneDevices
	m.alerts.Blur()
	m.devices.Focus()
}

func nextFilter(current dashboard.StatusFilter) dashboard.StatusFilter {
	filters := dashboard.StatusFilters()

	for i, f := range filters {
		if f == current {
			return filters[(i+1)%len(filters)]
		}
	}

	return dashboard.FilterAll
}

func (m *Model) selectDevice() tea.Cmd {
	id, ok := rowID(m.devices.SelectedRow())
	if !ok {
		m.err = errNoSelection

		return nil
	}

	ctx, actions := m.ctx, m.actions

	return func() tea.Msg {
		if err := actions.SelectDevice(ctx, id); err != nil {
			return actionDoneMsg{err: fmt.Errorf("failed to load device %d: %w", id, err)}
		}

		return actionDoneMsg{status: fmt.Sprintf("Loaded device %d", id)}
	}
}

func (m *Model) acknowledgeAlert() tea.Cmd {
	id, ok := rowID(m.alerts.SelectedRow())
	if !ok {
		m.err = errNoSelection

		return nil
	}

	ctx, actions := m.ctx, m.actions

	return func() tea.Msg {
		if err := actions.AcknowledgeAlert(ctx, id); err != nil {
			return actionDoneMsg{err: fmt.Errorf("failed to acknowledge alert %d: %w", id, err)}
		}

		return actionDoneMsg{status: fmt.Sprintf("Alert %d acknowledged", id)}
	}
}

// copyIP copies the IP of the selected device, or of the highlighted row
// when nothing is selected.
func (m *Model) copyIP() {
	var (
		device models.Device
		ok     bool
	)

	if device, ok = m.state.SelectedDevice(); !ok {
		if id, found := rowID(m.devices.SelectedRow()); found {
			device, ok = deviceByID(&m.state, id)
		}
	}

	if !ok {
		m.status, m.err = "", errNoSelection

		return
	}

	if err := m.copy(device.IPAddress); err != nil {
		m.status, m.err = "", fmt.Errorf("failed to copy to clipboard: %w", err)

		return
	}

	m.status, m.err = fmt.Sprintf("Copied %s to clipboard", device.IPAddress), nil
}

func (m *Model) View() string {
	var b strings.Builder

	s := m.styles
	st := &m.state

	b.WriteString(s.title.Render("NetWatch") + "  " + m.summary() + "\n")

	if m.searching {
		b.WriteString(m.search.View() + "\n")
	} else {
		b.WriteString(s.help.Render(fmt.Sprintf("filter: %s  search: %q", st.StatusFilter, st.Search)) + "\n")
	}

	b.WriteString(m.paneStyle(paneDevices).Render(s.heading.Render("Devices") + "\n" + m.devices.View()))
	b.WriteString("\n")
	b.WriteString(m.paneStyle(paneAlerts).Render(
		s.heading.Render(fmt.Sprintf("Alerts (%d unread)", st.UnreadAlerts)) + "\n" + m.alerts.View()))
	b.WriteString("\n")

	if detail := m.detailView(); detail != "" {
		b.WriteString(s.pane.Render(detail) + "\n")
	}

	if m.err != nil {
		b.WriteString(s.errText.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(s.status.Render(m.status) + "\n")
	}

	b.WriteString(s.help.Render("tab switch pane | enter select device | a ack alert | c copy IP | / search | f filter | esc clear | q quit"))

	return b.String()
}

func (m *Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return m.styles.focusedPane
	}

	return m.styles.pane
}

func (m *Model) summary() string {
	counts := make(map[models.DeviceStatus]int)
	for _, d := range m.state.Devices {
		counts[d.Status]++
	}

	s := m.styles

	return strings.Join([]string{
		fmt.Sprintf("%d devices", len(m.state.Devices)),
		s.up.Render(fmt.Sprintf("%d up", counts[models.DeviceStatusUp])),
		s.down.Render(fmt.Sprintf("%d down", counts[models.DeviceStatusDown])),
		s.warning.Render(fmt.Sprintf("%d warning", counts[models.DeviceStatusWarning])),
		fmt.Sprintf("%d links", len(m.state.TopologyLinks)),
		s.accent().Render(fmt.Sprintf("%d MAC changes", anomalyCount(&m.state))),
	}, "  ")
}

func (m *Model) detailView() string {
	device, ok := m.state.SelectedDevice()
	if !ok {
		return ""
	}

	s := m.styles

	var b strings.Builder

	b.WriteString(s.heading.Render(fmt.Sprintf("%s (%s)", device.DisplayName(), device.IPAddress)) + " ")
	b.WriteString(s.forStatus(string(device.Status)).Render(string(device.Status)) + "\n")

	if lines := interfaceLines(&m.state); len(lines) > 0 {
		b.WriteString(joinLines(lines) + "\n")
	} else {
		b.WriteString(s.help.Render("no interfaces") + "\n")
	}

	if lines := anomalyLines(&m.state, device.ID, maxAnomalyLines); len(lines) > 0 {
		b.WriteString(s.warning.Render("MAC changes") + "\n" + joinLines(lines))
	}

	return strings.TrimRight(b.String(), "\n")
}
