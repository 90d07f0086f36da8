package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	model, err := NewModel(logger, conf)
	if err != nil {
		return err
	}

	log.Info("Starting game", "board-size", conf.BoardSize, "players", len(conf.Players))

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}

// NewModel - builds the engine, the turn controller and the terminal front end from the configuration.
func NewModel(logger *slog.Logger, conf *config.Config) (tui.Model, error) {
	game, err := tictactoe.NewGame(conf.Players, conf.BoardSize)
	if err != nil {
		return tui.Model{}, fmt.Errorf("could not create game: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, game)

	return tui.New(logger, gameUseCase), nil
}
