// Package delivery defines the contract every transport entrypoint
// implements. The composition root calls Serve on each registered
// delivery and tears it down through lifecycle hooks.
package delivery

import "context"

// Delivery is a transport serving the application, e.g. an HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or the context is done.
	Serve(ctx context.Context) error
}
