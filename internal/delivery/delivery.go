// Package delivery groups the long-running entry points started by the application.
package delivery

import "context"

// Delivery is a component that serves until the application stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
