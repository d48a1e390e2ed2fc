// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//   - The environment is parsed into any Go struct using field tags.
//   - Types implementing Validator are checked after parsing, so a bad
//     secret or TTL stops the process before it starts serving.
//   - Each successfully loaded type is cached and parsed only once.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics instead of returning an error.
//
// # Validation
//
//	func (c Config) Validate() error {
//	    if c.AccessTTL <= 0 {
//	        return ErrInvalidLifetime
//	    }
//	    return nil
//	}
//
// A failing Validate is reported as ErrInvalidConfig joined with the
// returned error.
package config
