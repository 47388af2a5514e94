// Package delivery holds the entry points that expose the credential service.
package delivery

import "context"

// Delivery is a long-running entry point started once the application is wired.
type Delivery interface {
	// Serve blocks until the delivery stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
