// Package delivery defines the contract every transport front satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application, started by main and
// stopped through the fx lifecycle.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
