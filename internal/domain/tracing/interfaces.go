package tracing

import "context"

// Transaction is a unit of traced work that does not come in through an HTTP request
type Transaction interface {
	Context() context.Context
	End()
}

type Tracer interface {
	BackgroundTx(name string) Transaction
}
