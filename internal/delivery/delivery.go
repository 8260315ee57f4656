// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running entrypoint such as an HTTP server.
// Serve blocks until the entrypoint stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
