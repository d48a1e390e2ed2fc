package config_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/config"
)

type listenerConfig struct {
	Addr    string        `env:"CFGTEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFGTEST_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"CFGTEST_DEBUG"`
}

type headersConfig struct {
	Trusted []string `env:"CFGTEST_TRUSTED" envSeparator:","`
}

type cachedConfig struct {
	Namespace string `env:"CFGTEST_NAMESPACE" envDefault:"storekit"`
}

type mongoLikeConfig struct {
	URL string `env:"CFGTEST_MONGO_URL,required"`
}

// secretsConfig validates with a pointer receiver.
type secretsConfig struct {
	Access  string `env:"CFGTEST_ACCESS_SECRET"`
	Refresh string `env:"CFGTEST_REFRESH_SECRET"`
}

func (c *secretsConfig) Validate() error {
	if c.Access == c.Refresh {
		return errors.New("access and refresh secrets must differ")
	}
	return nil
}

// bucketConfig validates with a value receiver.
type bucketConfig struct {
	Capacity int `env:"CFGTEST_CAPACITY"`
}

func (c bucketConfig) Validate() error {
	if c.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	return nil
}

func TestLoad_ParsesEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_ADDR", "127.0.0.1:9000")
	t.Setenv("CFGTEST_TIMEOUT", "250ms")
	t.Setenv("CFGTEST_DEBUG", "true")
	t.Setenv("CFGTEST_TRUSTED", "X-Real-IP,X-Forwarded-For")

	var listener listenerConfig
	require.NoError(t, config.Load(&listener))
	assert.Equal(t, listenerConfig{Addr: "127.0.0.1:9000", Timeout: 250 * time.Millisecond, Debug: true}, listener)

	var headers headersConfig
	require.NoError(t, config.Load(&headers))
	assert.Equal(t, []string{"X-Real-IP", "X-Forwarded-For"}, headers.Trusted)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CFGTEST_NAMESPACE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFGTEST_NAMESPACE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.Namespace)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFGTEST_MONGO_URL")

	var cfg mongoLikeConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *listenerConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_Validate(t *testing.T) {
	t.Run("pointer receiver", func(t *testing.T) {
		t.Setenv("CFGTEST_ACCESS_SECRET", "same")
		t.Setenv("CFGTEST_REFRESH_SECRET", "same")

		var cfg secretsConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("failure is not cached", func(t *testing.T) {
		t.Setenv("CFGTEST_CAPACITY", "0")

		var cfg bucketConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrInvalidConfig)

		t.Setenv("CFGTEST_CAPACITY", "10")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 10, cfg.Capacity)
	})
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("CFGTEST_MONGO_URL")

	assert.Panics(t, func() {
		var cfg mongoLikeConfig
		config.MustLoad(&cfg)
	})
}
