package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/storekit/pkg/environment"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid logger configuration")

// Config holds operator overrides. Empty fields keep the environment preset.
type Config struct {
	Level  string `env:"LOG_LEVEL"`  // Level is debug, info, warn or error.
	Format string `env:"LOG_FORMAT"` // Format is json or text.
}

// Validate rejects unknown levels and formats.
func (c Config) Validate() error {
	if c.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Level)); err != nil {
			return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, c.Level)
		}
	}
	switch Format(strings.ToLower(c.Format)) {
	case "", FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// Option configures New.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. Unknown formats are ignored.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f == FormatJSON || f == FormatText {
			c.format = f
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors run on every record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the preset for env and tags records with service
// and env. Development logs text at debug level; every other environment
// logs JSON at info level.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		e := environment.Parse(env)
		if e == environment.Development {
			c.level, c.format = slog.LevelDebug, FormatText
		} else {
			c.level, c.format = slog.LevelInfo, FormatJSON
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", string(e)))
	}
}

// WithConfig applies operator overrides. Place it after WithEnvironment.
// Invalid values are ignored; Config.Validate reports them at load time.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		if cfg.Level != "" {
			var l slog.Level
			if err := l.UnmarshalText([]byte(cfg.Level)); err == nil {
				c.level = l
			}
		}
		WithFormat(Format(strings.ToLower(cfg.Format)))(c)
	}
}

// DefaultRedactedKeys are attribute keys whose values are never written.
var DefaultRedactedKeys = []string{
	"authorization",
	"password",
	"access_token",
	"refresh_token",
	"token",
	"secret",
	"cookie",
}

const redacted = "[REDACTED]"

// WithRedactedKeys adds attribute keys whose values are replaced before output.
// Matching is case-insensitive.
func WithRedactedKeys(keys ...string) Option {
	return func(c *config) {
		for _, k := range keys {
			if k != "" {
				c.redact[strings.ToLower(k)] = struct{}{}
			}
		}
	}
}

// New builds a logger. Without options it writes JSON at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
		redact: make(map[string]struct{}, len(DefaultRedactedKeys)),
	}
	for _, k := range DefaultRedactedKeys {
		cfg.redact[k] = struct{}{}
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: redactor(cfg.redact),
	}

	var h slog.Handler
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = &contextHandler{next: h, extractors: cfg.extractors}
	}
	return slog.New(h)
}

// redactor masks values of sensitive keys, including keys nested in groups.
func redactor(keys map[string]struct{}) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if _, ok := keys[strings.ToLower(a.Key)]; ok {
			return slog.String(a.Key, redacted)
		}
		return a
	}
}
