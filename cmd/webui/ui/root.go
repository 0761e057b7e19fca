package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
)

type RootModel struct {
	State     state
	Session   *Session
	Login     LoginModel
	Dashboard DashboardModel
	width     int
	height    int
}

func NewRootModel() RootModel {
	s := NewSession()
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.State = stateDashboard
		m.Dashboard = NewDashboardModel(m.Session, m.width, m.height)
		return m, m.Dashboard.Init()
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		if err, ok := msg.(errMsg); ok {
			m.Login.Err = err
			return m, nil
		}
		m.Login, cmd = m.Login.Update(msg)
	case stateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	switch m.State {
	case stateDashboard:
		return docStyle.Render(m.Dashboard.View())
	default:
		return docStyle.Render(m.Login.View())
	}
}
