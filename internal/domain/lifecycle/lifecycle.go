// Package lifecycle holds shared startup/shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup ping and
// the graceful shutdown of the HTTP server.
const DefaultTimeout = 10 * time.Second
