package uaplatform

import (
	"strings"
)

// Identity is the normalized platform identity derived from one user agent.
type Identity struct {
	Family      Family   `json:"family"`
	Platform    string   `json:"platform"`    // raw parenthetical segment, parentheses included
	Tokens      []string `json:"tokens"`      // trimmed tokens of the segment
	Description string   `json:"description"` // normalized device description
	Trimmed     string   `json:"trimmed"`     // user agent after trim and whitespace collapse
}

// Option configures Extract.
type Option func(*options)

type options struct {
	excludeBuild bool
}

// WithBuild keeps build identifiers (Android "Build/...", Chrome OS x.y.z) in the description.
func WithBuild() Option {
	return func(o *options) { o.excludeBuild = false }
}

// ExcludeBuild sets whether build identifiers are stripped. Stripping is the default.
func ExcludeBuild(exclude bool) Option {
	return func(o *options) { o.excludeBuild = exclude }
}

// Extract parses the platform block of a user agent into an Identity.
//
// It returns ErrEmptyUserAgent for blank input and ErrNoPlatformBlock when the
// user agent carries no parenthetical segment, or only an empty one such as
// "(;;)". Both mean "no identity" and are never fatal for a fingerprinting pass.
//
// Nested parentheses are not balanced: the first innermost segment wins, so
// "((nested); Android 10)" yields the "nested" block.
func Extract(userAgent string, opts ...Option) (Identity, error) {
	o := options{excludeBuild: true}
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := collapse(userAgent)
	if trimmed == "" {
		return Identity{}, ErrEmptyUserAgent
	}

	compressed := strings.TrimSpace(nonPlatformParenthesis.ReplaceAllString(trimmed, ""))
	m := parenthesis.FindStringSubmatch(compressed)
	if m == nil {
		return Identity{}, ErrNoPlatformBlock
	}

	tokens := Tokenize(m[1])
	if len(tokens) == 0 {
		return Identity{}, ErrNoPlatformBlock
	}

	id := Identity{
		Platform: m[0],
		Tokens:   tokens,
		Trimmed:  trimmed,
	}

	for _, r := range rules {
		if r.Matches(tokens) {
			id.Family = r.Family
			id.Description = r.Describe(tokens, o.excludeBuild)
			return id, nil
		}
	}

	id.Family = FamilyOther
	id.Description = describeOther(tokens)
	return id, nil
}

// Tokenize splits the content of a platform block into trimmed tokens.
// Commas are treated as semicolons. Empty tokens are dropped.
func Tokenize(segment string) []string {
	parts := strings.Split(strings.ReplaceAll(segment, ",", ";"), ";")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// describeOther joins the tokens that carry a long-tail OS marker.
// When none does, every token is joined verbatim.
func describeOther(tokens []string) string {
	var matched []string
	for _, t := range tokens {
		if otherDetect.MatchString(t) {
			matched = append(matched, t)
		}
	}
	if len(matched) > 0 {
		return collapse(joinTokens(matched))
	}
	return collapse(joinTokens(tokens))
}

func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

func collapse(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

func replaceFirstLiteral(s, old, repl string) string {
	return strings.Replace(s, old, repl, 1)
}
