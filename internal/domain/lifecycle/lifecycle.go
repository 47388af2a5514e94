// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook of the application.
const DefaultTimeout = 10 * time.Second
