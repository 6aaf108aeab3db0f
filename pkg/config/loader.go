package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per config type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	parsed           = &cache{values: make(map[reflect.Type]any)}
	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment. Later
// files win over earlier ones; variables already set by the process are
// overwritten too, so a file passed here is authoritative.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	defaultEnvLoaded.Do(func() {})
	return nil
}

// MustLoadEnv is LoadEnv that panics.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses the environment into v. Each config type is parsed once per
// process; later calls copy the cached value. A .env file in the working
// directory is read on first use when LoadEnv was never called.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	parsed.mu.Lock()
	defer parsed.mu.Unlock()

	if cached, ok := parsed.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	parsed.values[key] = fresh
	*v = fresh
	return nil
}

// MustLoad is Load that panics. Use it for configuration the process cannot
// start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses it again.
func ForceReload[T any](v *T) error {
	parsed.mu.Lock()
	delete(parsed.values, reflect.TypeFor[T]())
	parsed.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every parsed config.
func ResetCache() {
	parsed.mu.Lock()
	parsed.values = make(map[reflect.Type]any)
	parsed.mu.Unlock()
}
