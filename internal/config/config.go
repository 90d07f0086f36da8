package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Config struct {
	LogLevel  string          `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile   string          `yaml:"log-file" env:"LOG_FILE"`
	BoardSize int             `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Players   []entity.Player `yaml:"players"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if len(config.Players) == 0 {
		config.Players = entity.DefaultPlayers()
	}

	return config, nil
}
