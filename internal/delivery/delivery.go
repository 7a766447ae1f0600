// Package delivery holds the inbound adapters (HTTP servers) of the application.
package delivery

import "context"

// Delivery is a long-running server started by the application and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
