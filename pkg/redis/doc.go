// Package redis connects to the Redis server that stores revoked refresh
// token ids.
//
// Redis is optional: Config.Enabled reports false for an empty REDIS_URL and
// the application falls back to an in-process denylist. When enabled, Connect
// retries the initial ping and Healthcheck plugs into the readiness endpoint.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//	}
package redis
