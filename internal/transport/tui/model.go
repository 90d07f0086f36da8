package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	title          = "Tic Tac Toe"
	tieMessage     = "It's a tie!"
	resetMessage   = "Reset Ready!"
	maxDigitBoard  = 3
	blankCellLabel = " "
)

type gameUseCase interface {
	MakeTurn(row, col int) (usecase.Outcome, error)
	NewGame()
	Snapshot() usecase.Snapshot
	BoardSize() int
}

// Model is the bubbletea front end: a grid of cells, a status line and a help line.
type Model struct {
	logger  *slog.Logger
	useCase gameUseCase

	cursorRow int
	cursorCol int

	display      string
	displayColor lipgloss.TerminalColor

	help help.Model
}

func New(logger *slog.Logger, useCase gameUseCase) Model {
	return Model{
		logger:       logger.With("component", "tui"),
		useCase:      useCase,
		display:      turnMessage(useCase.Snapshot().CurrentPlayer),
		displayColor: lipgloss.NoColor{},
		help:         help.New(),
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
		return that, nil
	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := that.useCase.BoardSize()

	switch {
	case key.Matches(msg, keys.Quit):
		return that, tea.Quit
	case key.Matches(msg, keys.NewGame):
		that.useCase.NewGame()
		that.setDisplay(resetMessage, lipgloss.NoColor{})
	case key.Matches(msg, keys.Up):
		that.cursorRow = max(that.cursorRow-1, 0)
	case key.Matches(msg, keys.Down):
		that.cursorRow = min(that.cursorRow+1, size-1)
	case key.Matches(msg, keys.Left):
		that.cursorCol = max(that.cursorCol-1, 0)
	case key.Matches(msg, keys.Right):
		that.cursorCol = min(that.cursorCol+1, size-1)
	case key.Matches(msg, keys.Play):
		that.play(that.cursorRow, that.cursorCol)
	default:
		if row, col, ok := digitCell(msg.String(), size); ok {
			that.cursorRow, that.cursorCol = row, col
			that.play(row, col)
		}
	}

	return that, nil
}

// digitCell - maps "1".."9" onto the cells of boards up to 3x3, left to right, top to bottom.
func digitCell(pressed string, size int) (int, int, bool) {
	if size > maxDigitBoard || len(pressed) != 1 || pressed[0] < '1' || pressed[0] > '9' {
		return 0, 0, false
	}

	index := int(pressed[0] - '1')
	if index >= size*size {
		return 0, 0, false
	}

	return index / size, index % size, true
}

func (that *Model) play(row, col int) {
	outcome, err := that.useCase.MakeTurn(row, col)
	if err != nil {
		// Occupied cells and finished games simply ignore the press.
		that.logger.Debug("ignored move", "row", row, "col", col, "error", err)
		return
	}

	switch outcome.Status {
	case tictactoe.StatusTied:
		that.setDisplay(tieMessage, lipgloss.NoColor{})
	case tictactoe.StatusWon:
		that.setDisplay(fmt.Sprintf("%s won!", outcome.Player.Label), playerColor(outcome.Player.Color))
	default:
		that.setDisplay(turnMessage(outcome.Next), lipgloss.NoColor{})
	}
}

func (that *Model) setDisplay(msg string, color lipgloss.TerminalColor) {
	that.display = msg
	that.displayColor = color
}

func turnMessage(player entity.Player) string {
	return fmt.Sprintf("%s's turn", player.Label)
}

func (that Model) View() string {
	snapshot := that.useCase.Snapshot()

	colors := make(map[string]lipgloss.TerminalColor, len(snapshot.Players))
	for _, player := range snapshot.Players {
		if _, seen := colors[player.Label]; !seen {
			colors[player.Label] = playerColor(player.Color)
		}
	}

	rows := make([]string, 0, len(snapshot.Board))
	for row, cells := range snapshot.Board {
		rendered := make([]string, 0, len(cells))
		for col, cell := range cells {
			rendered = append(rendered, that.renderCell(cell, colors, snapshot.WinnerCombo.Contains(row, col)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(displayStyle.Foreground(that.displayColor).Render(that.display))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(that.help.View(keys))

	return b.String()
}

func (that Model) renderCell(cell entity.Move, colors map[string]lipgloss.TerminalColor, winning bool) string {
	style := cellStyle
	if cell.Row == that.cursorRow && cell.Col == that.cursorCol {
		style = cursorCellStyle
	}

	label := blankCellLabel
	if !cell.IsBlank() {
		labelStyle := lipgloss.NewStyle().Bold(true)
		if color, ok := colors[cell.Label]; ok {
			labelStyle = labelStyle.Foreground(color)
		}
		if winning {
			labelStyle = labelStyle.Inherit(winnerCellStyle)
		}
		label = labelStyle.Render(cell.Label)
	}

	if winning {
		style = style.Inherit(winnerCellStyle)
	}

	return style.Render(label)
}

// Cursor returns the cell the cursor is on.
func (that Model) Cursor() (int, int) {
	return that.cursorRow, that.cursorCol
}

// Display returns the current status line text.
func (that Model) Display() string {
	return that.display
}
