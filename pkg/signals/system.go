package signals

import "regexp"

// System labels produced by System.
const (
	SystemWindowsPhone = "Windows Phone"
	SystemWindows      = "Windows"
	SystemAndroid      = "Android"
	SystemChromeOS     = "Chrome OS"
	SystemLinux        = "Linux"
	SystemIPad         = "iPad"
	SystemIPhone       = "iPhone"
	SystemIPod         = "iPod"
	SystemIOS          = "iOS"
	SystemMac          = "Mac"
	SystemOther        = "Other"
)

type matcher struct {
	re    *regexp.Regexp
	label string
}

// systemCascade is ordered: Windows Phone before Windows, device specific Apple before Mac.
var systemCascade = []matcher{
	{regexp.MustCompile(`(?i)windows phone`), SystemWindowsPhone},
	{regexp.MustCompile(`(?i)win(dows|16|32|64|95|98|nt)|wow64`), SystemWindows},
	{regexp.MustCompile(`(?i)android`), SystemAndroid},
	{regexp.MustCompile(`(?i)cros`), SystemChromeOS},
	{regexp.MustCompile(`(?i)linux`), SystemLinux},
	{regexp.MustCompile(`(?i)ipad`), SystemIPad},
	{regexp.MustCompile(`(?i)iphone`), SystemIPhone},
	{regexp.MustCompile(`(?i)ipod`), SystemIPod},
	{regexp.MustCompile(`(?i)ios`), SystemIOS},
	{regexp.MustCompile(`(?i)mac`), SystemMac},
}

// System derives the operating system from a user agent.
// It returns "" for an empty user agent and SystemOther when nothing matches.
func System(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	return cascade(systemCascade, userAgent)
}

var mobileSystem = regexp.MustCompile(`Windows Phone|Android|iPad|iPhone|iPod|iOS`)

// IsMobile reports whether a System label belongs to a mobile family.
func IsMobile(system string) bool {
	return system != "" && mobileSystem.MatchString(system)
}

func cascade(ms []matcher, s string) string {
	for _, m := range ms {
		if m.re.MatchString(s) {
			return m.label
		}
	}
	return SystemOther
}
