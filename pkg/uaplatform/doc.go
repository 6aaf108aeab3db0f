// Package uaplatform extracts a normalized platform identity from the
// parenthetical block of a User-Agent string.
//
// A user agent such as
//
//	Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36
//
// carries its platform claims inside the first parenthesis segment. Extract
// isolates that segment, splits it into tokens and classifies the tokens
// against an ordered rule table (Android, Windows, Chrome OS, Linux, Apple).
// The first family whose detect pattern matches any token wins; its noise
// filter then drops uninformative tokens and the remaining ones are joined
// into a short description ("Windows 10 (64-bit)").
//
// # Usage
//
//	id, err := uaplatform.Extract(r.UserAgent())
//	if err != nil {
//	    // no identity: ErrEmptyUserAgent or ErrNoPlatformBlock
//	}
//	fmt.Println(id.Family, id.Description)
//
// Build identifiers are stripped by default; pass WithBuild to keep them.
//
// # Fallback
//
// Tokens that match no family produce FamilyOther. If some tokens carry a
// long-tail OS marker (Symbian, BlackBerry, BSD, ...) only those are joined,
// otherwise all tokens are joined verbatim.
//
// The rule table is static configuration. Rules returns a copy for callers
// that want to inspect it.
package uaplatform
