package cookie

import "net/http"

// Config holds token cookie configuration.
type Config struct {
	RefreshName string `env:"AUTH_COOKIE_NAME" envDefault:"storekit_refresh"`
	AccessName  string `env:"AUTH_COOKIE_ACCESS_NAME" envDefault:"storekit_access"`
	Path        string `env:"AUTH_COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"AUTH_COOKIE_DOMAIN" envDefault:""`
	Secure      bool   `env:"AUTH_COOKIE_SECURE" envDefault:"true"`
}

// DefaultConfig returns default token cookie configuration.
func DefaultConfig() Config {
	return Config{
		RefreshName: "storekit_refresh",
		AccessName:  "storekit_access",
		Path:        "/",
		Secure:      true,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// HttpOnly and SameSite=Strict are not configurable.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.RefreshName == "" || cfg.AccessName == "" {
		return nil, ErrEmptyName
	}

	configOpts := make([]Option, 0, 3+len(opts))
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure))
	configOpts = append(configOpts, opts...)

	m := New(configOpts...)
	m.refreshName = cfg.RefreshName
	m.accessName = cfg.AccessName
	return m, nil
}

// forceStrict pins the attributes every token cookie must carry.
func forceStrict(o *Options) {
	o.HttpOnly = true
	o.SameSite = http.SameSiteStrictMode
}
