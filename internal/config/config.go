package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage       string `env:"STAGE" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8000"`
	GridSize    int    `env:"GRID_SIZE" envDefault:"10"`
	ShipsSchema string `env:"SHIPS_SCHEMA" envDefault:"4:1,3:2,2:3,1:4"`
}

// Load reads the configuration from the environment. Outside prod a
// .env file in the working directory is loaded first when present.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.GridSize <= 0 {
		return cerr.ErrInvalidGridSize(c.GridSize)
	}
	schema, err := c.Schema()
	if err != nil {
		return err
	}
	return schema.FitsGrid(c.GridSize)
}

func (c Config) Schema() (mb.Schema, error) {
	return mb.ParseSchema(c.ShipsSchema)
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
