package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusTied    Status = "tied"
)

// Game holds the board, the player cycle and the outcome of a single session.
// It is not safe for concurrent use; the presentation layer owns it.
type Game struct {
	players       []entity.Player
	currentPlayer int
	boardSize     int

	board         [][]entity.Move
	winningCombos []entity.Combo

	hasWinner   bool
	winnerCombo entity.Combo
}

func NewGame(players []entity.Player, boardSize int) (*Game, error) {
	if boardSize < 1 {
		return nil, fmt.Errorf("%w: board size %d", apperror.ErrInvalidConfiguration, boardSize)
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", apperror.ErrInvalidConfiguration)
	}

	game := &Game{
		players:   append([]entity.Player(nil), players...),
		boardSize: boardSize,
	}
	game.setupBoard()

	return game, nil
}

// setupBoard - builds the blank board and precomputes the winning combinations.
func (that *Game) setupBoard() {
	that.board = make([][]entity.Move, that.boardSize)
	for row := range that.board {
		that.board[row] = make([]entity.Move, that.boardSize)
	}
	that.clearBoard()

	that.winningCombos = buildWinningCombos(that.boardSize)
}

func (that *Game) clearBoard() {
	for row, cells := range that.board {
		for col := range cells {
			cells[col] = entity.Move{Row: row, Col: col}
		}
	}
}

// buildWinningCombos returns rows, then columns, then the main and anti diagonals.
// ApplyMove relies on this order to pick the reported combo.
func buildWinningCombos(size int) []entity.Combo {
	combos := make([]entity.Combo, 0, 2*size+2)

	for row := 0; row < size; row++ {
		combo := make(entity.Combo, 0, size)
		for col := 0; col < size; col++ {
			combo = append(combo, entity.Coord{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	for col := 0; col < size; col++ {
		combo := make(entity.Combo, 0, size)
		for row := 0; row < size; row++ {
			combo = append(combo, entity.Coord{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	diagonal := make(entity.Combo, 0, size)
	antiDiagonal := make(entity.Combo, 0, size)
	for i := 0; i < size; i++ {
		diagonal = append(diagonal, entity.Coord{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, entity.Coord{Row: i, Col: size - 1 - i})
	}

	return append(combos, diagonal, antiDiagonal)
}

func (that *Game) inRange(row, col int) bool {
	return row >= 0 && row < that.boardSize && col >= 0 && col < that.boardSize
}

// IsValidMove - reports whether the target cell is blank and nobody has won yet.
// Coordinates outside the board are never valid.
func (that *Game) IsValidMove(move entity.Move) bool {
	if !that.inRange(move.Row, move.Col) {
		return false
	}

	return that.board[move.Row][move.Col].IsBlank() && !that.hasWinner
}

// ApplyMove - writes the move and checks every winning combination.
// The caller is expected to have checked IsValidMove first; only the coordinates are verified here.
func (that *Game) ApplyMove(move entity.Move) error {
	if !that.inRange(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, move.Row, move.Col)
	}

	that.board[move.Row][move.Col] = move

	for _, combo := range that.winningCombos {
		if that.isWinningCombo(combo) {
			that.hasWinner = true
			that.winnerCombo = combo
			break
		}
	}

	return nil
}

func (that *Game) isWinningCombo(combo entity.Combo) bool {
	labels := make(map[string]struct{}, 1)
	for _, coord := range combo {
		labels[that.board[coord.Row][coord.Col].Label] = struct{}{}
	}

	if len(labels) != 1 {
		return false
	}

	_, blank := labels[entity.EmptyCell]

	return !blank
}

func (that *Game) HasWinner() bool {
	return that.hasWinner
}

// IsTie - true when nobody has won and every cell is occupied.
func (that *Game) IsTie() bool {
	if that.hasWinner {
		return false
	}

	for _, cells := range that.board {
		for _, cell := range cells {
			if cell.IsBlank() {
				return false
			}
		}
	}

	return true
}

func (that *Game) Status() Status {
	switch {
	case that.hasWinner:
		return StatusWon
	case that.IsTie():
		return StatusTied
	default:
		return StatusOngoing
	}
}

// TogglePlayer - passes the turn to the next player in the cycle.
func (that *Game) TogglePlayer() {
	that.currentPlayer = (that.currentPlayer + 1) % len(that.players)
}

// Reset - blanks the board and clears the winner. Whose turn it is stays as it was.
func (that *Game) Reset() {
	that.clearBoard()
	that.hasWinner = false
	that.winnerCombo = nil
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.players[that.currentPlayer]
}

func (that *Game) Players() []entity.Player {
	return append([]entity.Player(nil), that.players...)
}

func (that *Game) BoardSize() int {
	return that.boardSize
}

func (that *Game) WinnerCombo() entity.Combo {
	return append(entity.Combo(nil), that.winnerCombo...)
}

func (that *Game) InWinnerCombo(row, col int) bool {
	return that.winnerCombo.Contains(row, col)
}

func (that *Game) WinningCombos() []entity.Combo {
	combos := make([]entity.Combo, len(that.winningCombos))
	for i, combo := range that.winningCombos {
		combos[i] = append(entity.Combo(nil), combo...)
	}

	return combos
}

func (that *Game) Cell(row, col int) (entity.Move, error) {
	if !that.inRange(row, col) {
		return entity.Move{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that.board[row][col], nil
}

// Board - returns a copy of the grid, indexed by row then column.
func (that *Game) Board() [][]entity.Move {
	board := make([][]entity.Move, len(that.board))
	for row, cells := range that.board {
		board[row] = append([]entity.Move(nil), cells...)
	}

	return board
}
