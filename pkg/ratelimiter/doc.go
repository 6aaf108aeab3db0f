// Package ratelimiter is an in-memory token bucket limiter with an HTTP
// middleware keyed by client IP. It guards the inspection endpoints, where a
// live-browser pass holds a Chrome tab for seconds.
package ratelimiter
