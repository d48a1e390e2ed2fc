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
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// Validator is implemented by configuration types that need checks beyond
// what struct tags express. A type that fails validation is not cached.
type Validator interface {
	Validate() error
}

// Load fills v from the environment. The first call loads ./.env when present.
// Each type is parsed once; later calls receive the cached copy.
//
// Parse failures are joined with ErrParsingConfig and Validate failures
// with ErrInvalidConfig.
//
//	var tokens jwt.Config // JWT_ACCESS_SECRET, JWT_REFRESH_SECRET, ...
//	if err := config.Load(&tokens); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	loaded := *v
	if err := env.Parse(&loaded); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := validate(&loaded); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	cache[key] = loaded
	*v = loaded
	return nil
}

func validate[T any](v *T) error {
	if val, ok := any(v).(Validator); ok {
		return val.Validate()
	}
	if val, ok := any(*v).(Validator); ok {
		return val.Validate()
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
