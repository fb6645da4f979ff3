// Package config loads environment-backed configuration structs. Field
// mapping uses caarlos0/env struct tags; a .env file is loaded once per
// process when present. Required variables that are absent fail loading,
// which callers should treat as fatal at startup.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilPointer    = errors.New("config: nil pointer passed to Load")
	ErrParsingConfig = errors.New("config: failed to parse environment")
)

var dotenvOnce sync.Once

// Load populates v from the environment based on its `env` struct tags.
//
//	type Config struct {
//		JWTSecret string `env:"JWT_SECRET,required"`
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot run without.
// A missing required variable stops startup, never surfaces per-request.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
