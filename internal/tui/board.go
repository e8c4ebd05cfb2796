package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edwincheahmp4/questboard/internal/session"
)

func RunBoard(ctx context.Context, ctrl *session.Controller, out io.Writer) error {
	m := newBoardModel(ctx, ctrl)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
