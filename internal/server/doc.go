// Package server is the HTTP API of liekit.
//
// Routes:
//
//	POST /v1/inspect        snapshot JSON in, verdict JSON out
//	POST /v1/inspect/html   snapshot JSON in, verdict fragment out (datastar aware)
//	GET  /v1/inspect/{hash} latest verdict for a fingerprint hash
//	GET  /v1/verdicts/{id}  verdict by id
//	POST /v1/probe          live browser pass, only when a Prober is configured
//	GET  /health/live, /health/ready
//
// The probe page and the worker bootstrap script are served at / and
// /worker.js. JSON replies share one envelope: {"data", "meta", "error"}.
package server
