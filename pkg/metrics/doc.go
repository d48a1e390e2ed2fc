// Package metrics exposes Prometheus counters for authentication outcomes,
// login results, refresh rotations, isolation rejections and HTTP traffic.
//
// Each Metrics value owns a private registry, so tests and multiple servers in
// one process never collide on the global default registerer. Every method is
// safe to call on a nil *Metrics, which lets components take metrics as an
// optional dependency.
//
//	m, err := metrics.New("storekit")
//	if err != nil {
//		return err
//	}
//	authn := auth.NewAuthenticator(tokens, auth.WithObserver(func(o auth.Outcome) {
//		m.ObserveAuth(string(o))
//	}))
//	r.Use(m.Middleware)
//	r.Method(http.MethodGet, "/metrics", m.Handler())
package metrics
