// Package delivery defines the contract every inbound adapter satisfies.
package delivery

import "context"

// Delivery is a long-running entry point into the application: the HTTP
// server and the reminder scheduler both implement it. Serve blocks until
// the delivery stops or fails; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
