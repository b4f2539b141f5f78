// Package delivery defines the contract for transport servers.
package delivery

import "context"

// Delivery is a transport entrypoint started by the application runtime.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
