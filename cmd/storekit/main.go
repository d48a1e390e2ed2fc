// Command storekit serves the multi-tenant storefront API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storekit/modules/storefront"
	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/clientip"
	"github.com/dmitrymomot/storekit/pkg/config"
	"github.com/dmitrymomot/storekit/pkg/cookie"
	"github.com/dmitrymomot/storekit/pkg/environment"
	"github.com/dmitrymomot/storekit/pkg/httpserver"
	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/metrics"
	"github.com/dmitrymomot/storekit/pkg/mongo"
	"github.com/dmitrymomot/storekit/pkg/ratelimiter"
	"github.com/dmitrymomot/storekit/pkg/redis"
	"github.com/dmitrymomot/storekit/pkg/requestid"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
	"github.com/dmitrymomot/storekit/svc/catalog"
	"github.com/dmitrymomot/storekit/svc/memstore"
	"github.com/dmitrymomot/storekit/svc/mongostore"
)

const (
	driverMongo  = "mongo"
	driverMemory = "memory"
)

type appConfig struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
	BcryptCost    int    `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	MetricsPrefix string `env:"METRICS_NAMESPACE" envDefault:"storekit"`
}

func (c appConfig) Validate() error {
	if c.StorageDriver != driverMongo && c.StorageDriver != driverMemory {
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("AUTH_BCRYPT_COST must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

type repositories struct {
	owners   account.OwnerRepository
	stores   account.StoreRepository
	products catalog.ProductRepository
}

func main() {
	if err := run(); err != nil {
		slog.Error("storekit stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		envCfg    environment.Config
		appCfg    appConfig
		jwtCfg    jwt.Config
		httpCfg   httpserver.Config
		cookieCfg cookie.Config
		redisCfg  redis.Config
		limitCfg  ratelimiter.Config
		ipCfg     clientip.Config
		logCfg    logger.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&envCfg) },
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&jwtCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&ipCfg) },
		func() error { return config.Load(&logCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithEnvironment(envCfg.AppEnv, envCfg.ServiceName),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
			auth.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	tokens, err := jwt.New(jwtCfg)
	if err != nil {
		return err
	}

	m, err := metrics.New(appCfg.MetricsPrefix)
	if err != nil {
		return err
	}

	var (
		checks  []httpserver.HealthCheck
		closers cleanup
	)
	defer func() {
		if err != nil {
			closers.run(log)
		}
	}()

	repos, err := openStorage(ctx, appCfg.StorageDriver, log, &checks, &closers)
	if err != nil {
		return err
	}

	accountOpts := []account.Option{
		account.WithPasswordHasher(account.NewBcryptHasher(appCfg.BcryptCost)),
		account.WithObserver(m),
		account.WithLogger(log),
	}
	var limiterStore ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		checks = append(checks, httpserver.HealthCheck{Name: "redis", Check: redis.Healthcheck(client)})
		closers.add(func(l *slog.Logger) {
			if err := client.Close(); err != nil {
				l.Error("failed to close redis client", logger.Error(err))
			}
		})
		accountOpts = append(accountOpts, account.WithDenylist(account.NewRedisDenylist(client, redisCfg.KeyPrefix, time.Now)))
		limiterStore = ratelimiter.NewRedisStore(client, redisCfg.KeyPrefix, time.Now)
		log.Info("refresh denylist and auth throttling backed by redis")
	} else {
		memStore := ratelimiter.NewMemoryStore()
		closers.add(func(*slog.Logger) { memStore.Close() })
		limiterStore = memStore
		log.Warn("REDIS_URL is empty, refresh denylist and auth throttling are process-local")
	}

	limiter, err := ratelimiter.NewBucket(limiterStore, limitCfg)
	if err != nil {
		return err
	}

	accounts := account.NewService(repos.owners, repos.stores, tokens, accountOpts...)
	products := catalog.NewService(repos.products, accounts.Authorizer(),
		catalog.WithObserver(m),
		catalog.WithLogger(log),
	)

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	router := storefront.Router(storefront.Options{
		Accounts:      accounts,
		Catalog:       products,
		Tokens:        tokens,
		Resolver:      tenant.NewResolver(repos.stores),
		Cookies:       cookies,
		Metrics:       m,
		Logger:        log,
		HealthChecks:  checks,
		HealthTimeout: httpCfg.HealthTimeout,

		AuthLimiter:      limiter,
		TrustedIPHeaders: ipCfg.TrustedHeaders,
	})

	srv := httpserver.NewFromConfig(httpCfg, append(closers.handoff(), httpserver.WithLogger(log))...)
	return srv.Run(ctx, environment.Middleware(envCfg.Environment())(router))
}

func openStorage(ctx context.Context, driver string, log *slog.Logger, checks *[]httpserver.HealthCheck, closers *cleanup) (repositories, error) {
	if driver == driverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return repositories{
			owners:   memstore.NewOwners(),
			stores:   memstore.NewStores(),
			products: memstore.NewProducts(),
		}, nil
	}

	var mongoCfg mongo.Config
	if err := config.Load(&mongoCfg); err != nil {
		return repositories{}, err
	}
	client, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		return repositories{}, err
	}
	*checks = append(*checks, httpserver.HealthCheck{Name: "mongodb", Check: mongo.Healthcheck(client)})
	closers.add(func(l *slog.Logger) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			l.Error("failed to disconnect mongodb", logger.Error(err))
		}
	})

	repos := mongostore.New(client.Database(mongoCfg.Database), mongostore.WithQueryTimeout(mongoCfg.QueryTimeout))
	if err := repos.EnsureIndexes(ctx); err != nil {
		return repositories{}, errors.Join(errors.New("ensure indexes"), err)
	}
	return repositories{
		owners:   repos.Owners,
		stores:   repos.Stores,
		products: repos.Products,
	}, nil
}
