// Package requestid propagates a correlation id through HTTP requests,
// contexts and logs.
//
// The id doubles as the pass id of any verdict produced while handling the
// request, which keeps stored reports, cached verdicts and log lines joined
// on a single key.
package requestid
