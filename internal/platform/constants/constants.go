// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: global token-bucket capacities and IP tracking TTLs.
  - Security: header and cookie names used by the auth gate.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "foodieblog-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Global Rate Limiting (token bucket, all paths)

const (
	// GlobalRateLimitRPS is the requests per second allowed per IP across the
	// whole API. The fixed-window limiter guards sensitive paths separately.
	GlobalRateLimitRPS = 100.0

	// GlobalRateLimitBurst is the maximum burst allowed for the global limiter.
	GlobalRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
	HeaderOrigin        = "Origin"
)

// # Authentication

const (
	// BearerPrefix is the credential scheme expected in the Authorization header.
	BearerPrefix = "Bearer "

	// RoleAuthorityPrefix prefixes role claims when mapped to authorities
	// (claim "ADMIN" becomes authority "ROLE_ADMIN").
	RoleAuthorityPrefix = "ROLE_"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixStatsDaily      = "stats:daily:"
	RedisPrefixStatsTopAuthors = "stats:top_authors:"
)

// # Stats Caching

const (
	// StatsCacheTTL bounds the staleness of admin dashboard aggregates.
	StatsCacheTTL = 60 * time.Second
)
