// Package errcapture collects errors raised during a lie-detection pass and
// sanitizes them before they reach a report.
//
// Only well-known error names survive (Error, TypeError, SecurityError and
// the other built-in browser error types). Messages survive only when they
// contain inner whitespace, which filters out single-token noise injected by
// anti-fingerprinting extensions. Untrusted parts are dropped, not rewritten.
//
// A Collector is created per pass and is safe for concurrent use:
//
//	c := errcapture.New(log)
//	c.Capture(err, "worker")
//	rep, _ := c.Report()
package errcapture
