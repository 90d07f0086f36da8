package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameEngine interface {
	IsValidMove(move entity.Move) bool
	ApplyMove(move entity.Move) error
	HasWinner() bool
	IsTie() bool
	TogglePlayer()
	Reset()

	CurrentPlayer() entity.Player
	Players() []entity.Player
	BoardSize() int
	Board() [][]entity.Move
	WinnerCombo() entity.Combo
	Status() tictactoe.Status
}

// Outcome describes what a single turn did to the game.
type Outcome struct {
	Status tictactoe.Status
	// Player made the move.
	Player entity.Player
	// Next is whose turn it is now; equal to Player when the game has ended.
	Next  entity.Player
	Combo entity.Combo
}

// Snapshot is everything the presentation layer needs to draw the game.
type Snapshot struct {
	Board         [][]entity.Move
	Players       []entity.Player
	CurrentPlayer entity.Player
	Status        tictactoe.Status
	WinnerCombo   entity.Combo
}

type GameUseCase struct {
	logger *slog.Logger
	game   gameEngine
}

func NewGameUseCase(logger *slog.Logger, game gameEngine) *GameUseCase {
	return &GameUseCase{
		logger: logger.With("component", "usecase"),
		game:   game,
	}
}

// MakeTurn - plays the cell for the current player and advances the turn when the game goes on.
func (that *GameUseCase) MakeTurn(row, col int) (Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "row", row, "col", col)

	size := that.game.BoardSize()
	if row < 0 || row >= size || col < 0 || col >= size {
		return Outcome{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	player := that.game.CurrentPlayer()
	move := entity.Move{Row: row, Col: col, Label: player.Label}

	if !that.game.IsValidMove(move) {
		log.Warn("move rejected", "player", player.Label)
		return Outcome{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidMove, row, col)
	}

	if err := that.game.ApplyMove(move); err != nil {
		return Outcome{}, fmt.Errorf("failed to apply move: %w", err)
	}

	log.Debug("move applied", "player", player.Label)

	switch {
	case that.game.IsTie():
		log.Info("game finished in a tie")
		return Outcome{Status: tictactoe.StatusTied, Player: player, Next: player}, nil
	case that.game.HasWinner():
		combo := that.game.WinnerCombo()
		log.Info("game won", "winner", player.Label, "combo", combo)
		return Outcome{Status: tictactoe.StatusWon, Player: player, Next: player, Combo: combo}, nil
	}

	that.game.TogglePlayer()

	return Outcome{Status: tictactoe.StatusOngoing, Player: player, Next: that.game.CurrentPlayer()}, nil
}

// NewGame - clears the board for another round. The player whose turn it was keeps it.
func (that *GameUseCase) NewGame() {
	that.game.Reset()

	that.logger.Info("new game", "player", that.game.CurrentPlayer().Label)
}

func (that *GameUseCase) Snapshot() Snapshot {
	return Snapshot{
		Board:         that.game.Board(),
		Players:       that.game.Players(),
		CurrentPlayer: that.game.CurrentPlayer(),
		Status:        that.game.Status(),
		WinnerCombo:   that.game.WinnerCombo(),
	}
}

func (that *GameUseCase) BoardSize() int {
	return that.game.BoardSize()
}
