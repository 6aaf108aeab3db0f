// Package workerscope reads the user agent a browser reports from inside a
// worker execution context, as a second opinion on the main thread's claim.
//
// Contexts are tried strictly in sequence: service worker, shared worker,
// dedicated worker. Each attempt first validates the constructor the context
// presents (a spoofing extension often replaces it), then exchanges a single
// {type:"fingerprint"} message under a deadline. An attempt that times out,
// fails or answers without a user agent falls back to the next context.
//
// The walk is a small state machine with two events, resolve and fallback.
// Reaching the end without an answer yields ErrNoWorkerScope, which callers
// treat as "signal absent" rather than a failure.
//
// Environment abstracts the browser. Reported replays observations that a
// page submitted; the browserprobe package drives a live Chrome.
package workerscope
