package suite

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game *tictactoe.Game
}

// New - builds a suite around a default 3x3 X/O game.
func New(t *testing.T) *Suite {
	t.Helper()

	return NewWithGame(t, entity.DefaultPlayers(), entity.DefaultBoardSize)
}

func NewWithGame(t *testing.T, players []entity.Player, boardSize int) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	game, err := tictactoe.NewGame(players, boardSize)
	if err != nil {
		t.Fatalf("could not create game: %v", err)
	}

	return &Suite{
		T:      t,
		Logger: logger,
		Game:   game,
	}
}
