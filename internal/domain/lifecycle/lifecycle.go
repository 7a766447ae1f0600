// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds how long a delivery may take to stop gracefully.
const DefaultTimeout = 10 * time.Second
