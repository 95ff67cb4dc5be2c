// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface, such as the HTTP API. Serve blocks until
// the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
