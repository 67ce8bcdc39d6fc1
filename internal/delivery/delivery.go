// Package delivery defines the contract shared by the inbound transports
// (the REST API server and the Pub/Sub push worker).
package delivery

import "context"

// Delivery is a long-running inbound transport. Serve blocks until the
// transport stops or fails; shutdown is handled through Fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
