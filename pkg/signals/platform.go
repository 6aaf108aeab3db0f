package signals

import "regexp"

// Core labels shared by Core and PlatformSystem.
const (
	CoreWindows = "Windows"
	CoreLinux   = "Linux"
	CoreIOS     = "iOS"
	CoreMac     = "Mac"
	CoreOther   = "Other"
)

var coreCascade = []matcher{
	{regexp.MustCompile(`(?i)win(dows|16|32|64|95|98|nt)|wow64`), CoreWindows},
	{regexp.MustCompile(`(?i)android|linux|cros`), CoreLinux},
	{regexp.MustCompile(`(?i)i(os|p(ad|hone|od))`), CoreIOS},
	{regexp.MustCompile(`(?i)mac`), CoreMac},
}

// The platform string is coarser than the user agent, so its patterns are narrower.
var platformCascade = []matcher{
	{regexp.MustCompile(`(?i)win`), CoreWindows},
	{regexp.MustCompile(`(?i)android|arm|linux`), CoreLinux},
	{regexp.MustCompile(`(?i)i(os|p(ad|hone|od))`), CoreIOS},
	{regexp.MustCompile(`(?i)mac`), CoreMac},
}

var (
	uaWin64           = regexp.MustCompile(`(?i)w(in|ow)64`)
	uaWin16or32       = regexp.MustCompile(`(?i)win(16|32)`)
	platformWin16     = regexp.MustCompile(`(?i)win16`)
	platformWin16or32 = regexp.MustCompile(`(?i)win(16|32)`)
)

// Core derives the coarse system family from a user agent.
func Core(userAgent string) string {
	return cascade(coreCascade, userAgent)
}

// PlatformSystem derives the coarse system family from navigator.platform.
func PlatformSystem(platform string) string {
	return cascade(platformCascade, platform)
}

// Invalid64BitCPU reports a CPU word size contradiction between the user agent
// and the platform string: a 64-bit user agent on a Win16 platform, or a
// 16/32-bit user agent the platform does not corroborate.
func Invalid64BitCPU(userAgent, platform string) bool {
	return (uaWin64.MatchString(userAgent) && platformWin16.MatchString(platform)) ||
		(uaWin16or32.MatchString(userAgent) && !platformWin16or32.MatchString(platform))
}

// PlatformLie reports whether the platform string contradicts the user agent.
func PlatformLie(userAgent, platform string) bool {
	return Core(userAgent) != PlatformSystem(platform) || Invalid64BitCPU(userAgent, platform)
}
