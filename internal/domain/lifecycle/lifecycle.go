// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as
// server drain and connection close.
const DefaultTimeout = 10 * time.Second
