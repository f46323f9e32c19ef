package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application after fx wiring.
type Delivery interface {
	Serve(ctx context.Context) error
}
