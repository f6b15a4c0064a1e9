package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Chat turns wait on the completion provider, possibly over several tool rounds.
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
