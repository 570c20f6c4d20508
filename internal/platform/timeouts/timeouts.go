// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamRequest caps a single call to a remote catalog or auth API.
const UpstreamRequest = 10 * time.Second

// BaseProbe caps one candidate API base verification request.
const BaseProbe = 5 * time.Second
