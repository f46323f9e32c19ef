// Package lifecycle holds process-wide lifecycle constants shared by deliveries and infra.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
