package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	defaultEnvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment.
// With no paths it reads ".env" from the working directory.
// Later files override earlier ones; variables already present in the
// process environment are left untouched by the first file only.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(paths[0]); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	if len(paths) > 1 {
		if err := godotenv.Overload(paths[1:]...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Load parses environment variables into v. The result for each type
// T is cached, so later calls are served without touching the environment.
//
// The default .env file is read once, on the first call, if it exists.
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	return parse(key, v)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Reload discards the cached value for T and parses the environment again.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	delete(cache, key)
	cacheMu.Unlock()

	return parse(key, v)
}

// ResetCache drops all cached configurations.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[reflect.Type]any)
	cacheMu.Unlock()
}

func parse[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	// A concurrent caller may have won the race; keep the first value.
	if existing, ok := cache[key]; ok {
		parsed = existing.(T)
	} else {
		cache[key] = parsed
	}
	cacheMu.Unlock()

	*v = parsed
	return nil
}
