package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout covers the ask endpoint, which waits on a chat completion.
	writeTimeout = 90 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
