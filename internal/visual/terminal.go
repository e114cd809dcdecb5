// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package visual

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/term"

	"github.com/toeirei/genpwd/internal/i18n"
)

var (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")

	titleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).Padding(0, 1)
	codeStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Terminal shows the QR code in the current terminal until dismissed.
type Terminal struct {
	In    io.Reader
	Out   io.Writer
	Level qrcode.RecoveryLevel

	// isTerminal defaults to term.IsTerminal.
	isTerminal func(fd int) bool
}

// NewTerminal returns a Terminal bridge at medium error correction.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out, Level: qrcode.Medium}
}

// RenderAndDisplay implements Bridge.
func (t *Terminal) RenderAndDisplay(ctx context.Context, text string) error {
	code, err := Render(text, t.Level)
	if err != nil {
		return err
	}
	if !t.hasDisplay() {
		return fmt.Errorf("%w: output is not a terminal", ErrDisplayUnavailable)
	}

	p := tea.NewProgram(newCodeModel(code),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
	}
	return nil
}

func (t *Terminal) hasDisplay() bool {
	f, ok := t.Out.(fdWriter)
	if !ok {
		return false
	}
	isTerm := t.isTerminal
	if isTerm == nil {
		isTerm = term.IsTerminal
	}
	return isTerm(int(f.Fd()))
}

type codeKeyMap struct {
	Close key.Binding
}

func (k codeKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Close} }
func (k codeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// codeModel is the bubbletea model of the full-screen code view.
type codeModel struct {
	code   string
	keys   codeKeyMap
	help   help.Model
	width  int
	height int
}

func newCodeModel(code string) codeModel {
	return codeModel{
		code: code,
		keys: codeKeyMap{
			Close: key.NewBinding(
				key.WithKeys("q", "esc", "enter", "ctrl+c"),
				key.WithHelp("q/esc/enter", i18n.T("qr.close")),
			),
		},
		help: help.New(),
	}
}

func (m codeModel) Init() tea.Cmd { return nil }

func (m codeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m codeModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(i18n.T("qr.title")),
		codeStyle.Render(m.code),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
