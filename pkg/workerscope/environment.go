package workerscope

import "context"

// Environment is the boundary to a browser that can host worker contexts.
type Environment interface {
	// Capability reports whether t exists and which constructor it presents.
	Capability(ctx context.Context, t ContextType) (Capability, error)
	// Exchange launches a fresh context of type t, sends req and returns the
	// first reply. The context is released once it has answered.
	Exchange(ctx context.Context, t ContextType, req Request) (Reply, error)
}

// Capturer records errors raised during an attempt.
type Capturer interface {
	Capture(err error, custom ...string)
}
