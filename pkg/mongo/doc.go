// Package mongo connects to the MongoDB deployment that stores owners, stores
// and products.
//
// New applies the pool and timeout settings from Config, pings the primary
// with retries and returns ErrFailedToConnectToMongo joined with the last
// driver error when the server never answers. QueryTimeout becomes the client
// level operation timeout, so a slow lookup surfaces as a deadline error that
// the repositories report as unavailable.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	db := client.Database(cfg.Database)
//
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, time.Second,
//		httpserver.HealthCheck{Name: "mongo", Check: mongo.Healthcheck(client)},
//	))
package mongo
