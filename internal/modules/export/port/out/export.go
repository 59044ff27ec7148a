package out

import "context"

// Delivery hands a rendered artifact to whatever makes it reachable for
// the operator (a file on disk in the default wiring). It returns where
// the artifact ended up.
type Delivery interface {
	Deliver(ctx context.Context, name, mimeType string, payload []byte) (string, error)
}
