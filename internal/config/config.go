// Package config loads strx settings from the environment and optional .env files.
package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/strx/pkg/logger"
)

var (
	ErrDotenv = errors.New("config: failed to read env file")
	ErrParse  = errors.New("config: failed to parse environment")
)

// Config holds everything the strx command reads from the environment.
type Config struct {
	Log logger.Config

	CacheSize    int    `env:"STRX_CACHE_SIZE" envDefault:"4096"`
	RedisURL     string `env:"STRX_REDIS_URL"`
	RedisPrefix  string `env:"STRX_REDIS_PREFIX" envDefault:"strx"`
	JSONMaxDepth int    `env:"STRX_JSON_MAX_DEPTH" envDefault:"512"`
}

// Load reads the given env files, then parses the process environment into a
// Config. Variables already set in the environment win over file values.
// Without files, ".env" is read when present.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(ErrDotenv, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrDotenv, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParse, err)
	}
	return cfg, nil
}
