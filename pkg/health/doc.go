// Package health provides liveness and readiness HTTP handlers.
//
// Liveness always answers OK while the process runs. Readiness runs the
// registered checks concurrently and answers 503 when any of them fails:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//		"upstream": health.HTTPCheck(nil, "http://app:3000/"),
//	}, health.WithLogger(log)))
//
// Both handlers answer JSON when the request has ?format=json or accepts
// application/json, and plain text otherwise.
package health
