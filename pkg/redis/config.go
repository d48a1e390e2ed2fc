package redis

import "time"

// Config holds the Redis connection settings. Redis backs the refresh token
// denylist; an empty ConnectionURL means the process runs without it.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:""`                // ConnectionURL in the format "redis://:password@localhost:6379/0". Empty disables Redis.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"storekit"` // KeyPrefix namespaces every key written by this process.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the delay between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout bounds the whole connection procedure.
}

// Enabled reports whether a Redis connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
