// Package metrics provides operational metrics collection.
//
// Metrics are registered on the default Prometheus registry and exposed by
// Handler for scraping:
//
//   - HTTP requests by method and status class, with latency
//   - Catalog source fetches by source and outcome, with latency
//   - Auth backend calls by operation and outcome
//   - API base resolution outcomes
package metrics
