package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Session *Session
	Table   table.Model
	Stats   *StatsPayload
	Err     error
}

type refreshedMsg struct {
	stats    *StatsPayload
	gateways []GatewayEntry
}

func NewDashboardModel(s *Session, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "UID", Width: 38},
		{Title: "Last seen", Width: 20},
		{Title: "Version", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-14),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Session: s, Table: t}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m DashboardModel) refreshCmd() tea.Msg {
	stats, err := m.Session.Stats()
	if err != nil {
		return errMsg(err)
	}
	gws, err := m.Session.Gateways()
	if err != nil {
		return errMsg(err)
	}
	return refreshedMsg{stats: stats, gateways: gws}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "q":
			return m, tea.Quit
		}

	case refreshedMsg:
		m.Err = nil
		m.Stats = msg.stats
		rows := make([]table.Row, 0, len(msg.gateways))
		for _, g := range msg.gateways {
			lastSeen := "never"
			if g.LastDateCall != nil {
				lastSeen = g.LastDateCall.Local().Format(time.DateTime)
			}
			rows = append(rows, table.Row{g.GtwName, g.GtwUID, lastSeen, g.SwVersion})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func kpiLine(label string, value int64) string {
	return kpiLabelStyle.Render(label+": ") + kpiValueStyle.Render(fmt.Sprintf("%d", value))
}

func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gateway Portal - Fleet Dashboard") + "\n\n")

	if m.Stats != nil {
		k := m.Stats.KPI
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			kpiLine("Active", k.ActiveGateways), "   ",
			kpiLine("Total", k.TotalGateways), "   ",
			kpiLine("Errors 24h", k.ErrorsLast24h), "   ",
			kpiLine("Import errors", k.ImportErrorsCount), "   ",
			kpiLine("Ch. update", k.ChannelsToUpdate), "   ",
			kpiLine("Ch. delete", k.ChannelsToDelete),
		))
		b.WriteString("\n")
		if len(m.Stats.TopBatchErrors) > 0 {
			parts := make([]string, 0, len(m.Stats.TopBatchErrors))
			for _, be := range m.Stats.TopBatchErrors {
				parts = append(parts, fmt.Sprintf("%s (%d)", be.BatchName, be.Count))
			}
			b.WriteString(kpiLabelStyle.Render("Top error batches: ") + strings.Join(parts, ", "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.Table.View())
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("r: refresh  q: quit"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
