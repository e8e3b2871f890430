// Package delivery defines the transport-agnostic contract every
// inbound adapter (HTTP, WebSocket, ...) fulfils.
package delivery

import "context"

// Delivery is a serving transport managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
