package signals

import "regexp"

var (
	macClaim      = regexp.MustCompile(`(?i)mac`)
	likeMacCompat = regexp.MustCompile(`(?i)like mac`)
)

// MacTouchLie reports touch support on a client that claims to be a Mac.
// The user agent claim is excused by a "like Mac" compatibility token, which
// iOS devices carry. Touch can be disabled on Android, iOS and emulators, so
// only a positive touch count is evidence.
func MacTouchLie(userAgent, platform string, maxTouchPoints int) bool {
	if maxTouchPoints <= 0 {
		return false
	}
	uaClaimsMac := macClaim.MatchString(userAgent) && !likeMacCompat.MatchString(userAgent)
	return uaClaimsMac || macClaim.MatchString(platform)
}
