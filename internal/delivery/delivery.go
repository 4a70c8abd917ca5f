// Package delivery defines the transport-agnostic entry points of the
// application.
package delivery

import "context"

// Delivery is one serving surface of the application. Implementations block
// in Serve until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
