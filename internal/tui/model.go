package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/session"
	"github.com/edwincheahmp4/questboard/internal/storage"
	"github.com/edwincheahmp4/questboard/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	ctrl *session.Controller

	width  int
	height int

	snap     *session.Snapshot
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *session.Snapshot
	err  error
}

type completedMsg struct {
	id   int64
	res  *engine.CompleteResult
	snap *session.Snapshot
	err  error
}

type deletedMsg struct {
	id   int64
	snap *session.Snapshot
	err  error
}

func newBoardModel(ctx context.Context, ctrl *session.Controller) boardModel {
	return boardModel{
		ctx:     ctx,
		ctrl:    ctrl,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.ctrl.Refresh(m.ctx)
		return loadedMsg{snap: snap, err: err}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, snap, err := m.ctrl.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, snap: snap, err: err}
	}
}

func (m boardModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.ctrl.DeleteQuest(m.ctx, id)
		return deletedMsg{id: id, snap: snap, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		// The snapshot is refreshed even when the completion failed, so the
		// board never drifts from the store.
		if msg.snap != nil {
			m.snap = msg.snap
			m.clampSelection()
		}
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed #%d: +%d XP (level %d → %d)",
			msg.res.QuestID, msg.res.XPAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, nil
	case deletedMsg:
		if msg.snap != nil {
			m.snap = msg.snap
			m.clampSelection()
		}
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Deleted #%d.", msg.id)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.snap != nil && m.selected < len(m.snap.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			q := m.selectedQuest()
			if q == nil {
				return m, nil
			}
			if q.Completed {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing #%d…", q.ID)
			return m, m.completeCmd(q.ID)
		case "x", "d":
			q := m.selectedQuest()
			if q == nil {
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Deleting #%d…", q.ID)
			return m, m.deleteCmd(q.ID)
		}
	}
	return m, nil
}

func (m *boardModel) clampSelection() {
	n := 0
	if m.snap != nil {
		n = len(m.snap.Quests)
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) selectedQuest() *storage.Todo {
	if m.snap == nil || m.selected < 0 || m.selected >= len(m.snap.Quests) {
		return nil
	}
	return &m.snap.Quests[m.selected]
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	quests := m.renderQuests()
	board := m.renderLeaderboard()
	footer := "\n" + m.lastLog + "\n"

	leftW := 44
	if m.width > 0 {
		maxLeft := m.width * 2 / 3
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 24 {
			leftW = 24
		}
	}

	linesLeft := strings.Split(quests, "\n")
	linesRight := strings.Split(board, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.snap == nil || m.snap.Profile == nil {
		return "Questboard — sign in to track quests (leaderboard below)"
	}
	p := m.snap.Profile
	st := engine.ProfileState{Exp: p.Exp, Level: p.Level}
	bar := ui.XPBar(p.Exp, engine.LevelCapacity(p.Level), 30)
	return fmt.Sprintf("Questboard | %s | Level %d | XP %d/%d %s (%d to next)",
		ui.DisplayName(p.Username), p.Level, p.Exp, engine.LevelCapacity(p.Level), bar, engine.XPToNext(st))
}

func (m boardModel) renderQuests() string {
	var out []string
	out = append(out, "Quest Log")
	if m.loading {
		out = append(out, "Loading…")
		return strings.Join(out, "\n")
	}
	if m.snap == nil || len(m.snap.Quests) == 0 {
		out = append(out, "(no quests)")
		out = append(out, "")
		out = append(out, "Keys")
		out = append(out, "- ↑/↓ or j/k: move")
		out = append(out, "- c/space: complete")
		out = append(out, "- x: delete")
		out = append(out, "- r: refresh  q: quit")
		return strings.Join(out, "\n")
	}
	for i, q := range m.snap.Quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if q.Completed {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s #%d %s (+%d XP)", cursor, mark, q.ID, q.Task, q.XP))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderLeaderboard() string {
	var out []string
	out = append(out, "Leaderboard")
	if m.snap == nil || len(m.snap.Leaderboard) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, e := range m.snap.Leaderboard {
		out = append(out, fmt.Sprintf("%2d. %-14s lvl %d (%d xp)", i+1, ui.DisplayName(e.Username), e.Level, e.Exp))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
