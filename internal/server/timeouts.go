package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second

	// writeTimeoutSlack is added on top of the upstream timeout so a slow
	// Football-API response can still be written back.
	writeTimeoutSlack = 5 * time.Second
	minWriteTimeout   = 10 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

func writeTimeoutFor(upstream time.Duration) time.Duration {
	if d := upstream + writeTimeoutSlack; d > minWriteTimeout {
		return d
	}
	return minWriteTimeout
}
