// Package lifecycle holds shared startup and shutdown bounds.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (pings, migrations) and graceful shutdown.
const DefaultTimeout = 10 * time.Second
