// Package async runs calls on their own goroutine and waits for them with a
// bound.
//
// Async returns a Future; Await, AwaitWithTimeout and AwaitContext collect
// the result. Bounded is the combinator used at every asynchronous boundary
// of a pass: run one operation under a deadline and report expiry as
// ErrTimeout so the caller can move on to its fallback.
//
//	reply, err := async.Bounded(ctx, time.Second, func(ctx context.Context) (Reply, error) {
//	    return env.Exchange(ctx, Service, FingerprintRequest)
//	})
//	if errors.Is(err, async.ErrTimeout) {
//	    // treat as absent
//	}
//
// A timed out call is abandoned, not stopped; the function should watch its
// context if it holds resources.
package async
