// Package environment parses APP_ENV and carries the result through
// context.Context.
//
// Parse accepts the long names and the short aliases (prod, stage, dev) and
// falls back to Development. The value selects the logger preset and whether
// token cookies are forced Secure.
//
//	var cfg environment.Config
//	config.MustLoad(&cfg)
//	env := cfg.Environment()
//
//	r.Use(environment.Middleware(env))
//	if environment.IsProduction(r.Context()) {
//		// ...
//	}
package environment
