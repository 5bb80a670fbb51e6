package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotenv sync.Once

// Load populates cfg from environment variables based on its `env` field
// tags. A .env file in the working directory is read once per process before
// the first parse; its absence is not an error.
//
//	type Config struct {
//	    DatabaseURL string `env:"DATABASE_URL,required"`
//	    Debug       bool   `env:"DEBUG" envDefault:"false"`
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	loadDotenv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}
	return nil
}

// MustLoad is Load panicking on error, for configuration the process cannot
// start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
