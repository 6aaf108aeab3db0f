// Package hashify produces stable content hashes for values that are
// reported alongside a verdict.
//
// Hash is a SHA-256 digest over the JSON encoding of a value, rendered as
// lowercase hex. Mini is a short 32-bit rolling hash, useful for display
// where a full digest is noise.
//
// Both encode without HTML escaping so the digest of a value matches the
// digest a browser computes over JSON.stringify of the same value.
package hashify
