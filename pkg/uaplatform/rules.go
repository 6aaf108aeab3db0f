package uaplatform

import "regexp"

// Family is a coarse platform family a user agent can be classified into.
type Family string

const (
	FamilyAndroid  Family = "Android"
	FamilyWindows  Family = "Windows"
	FamilyChromeOS Family = "Chrome OS"
	FamilyLinux    Family = "Linux"
	FamilyApple    Family = "Apple"
	FamilyOther    Family = "Other"
)

// String returns the family label.
func (f Family) String() string { return string(f) }

// Rule describes how one platform family is detected and normalized.
// Release and Build are optional and may be nil.
type Rule struct {
	Family  Family
	Detect  *regexp.Regexp // token containment test that selects the family
	Noise   *regexp.Regexp // tokens matching it are dropped before the join
	Release *regexp.Regexp // rewrites a token to its release phrase
	Build   *regexp.Regexp // build identifiers removed when builds are excluded

	// finish runs on the joined description before whitespace is collapsed.
	finish func(string) string
}

var (
	// Parenthetical phrases that are never platform blocks.
	nonPlatformParenthesis = regexp.MustCompile(`(?i)\((khtml|unlike|vizio|like gec|internal dummy|org\.eclipse|openssl|ipv6|via translate|safari|cardamon).+|xt\d+\)`)

	// First parenthesis-delimited segment.
	parenthesis = regexp.MustCompile(`\(([^()]+)\)`)

	whitespaceRun = regexp.MustCompile(`\s{2,}`)

	androidDetect  = regexp.MustCompile(`(?i)android`)
	androidNoise   = regexp.MustCompile(`(?i)^(linux|[a-z]|wv|mobile|[a-z]{2}(-|_)[a-z]{2}|[a-z]{2})$|windows|(rv:|trident|webview|iemobile).+`)
	androidBuild   = regexp.MustCompile(`(?i)build/.+\s|\sbuild/.+`)
	androidRelease = regexp.MustCompile(`(?i)android( |-)\d+`)

	windowsDetect   = regexp.MustCompile(`(?i)windows.+`)
	windowsNoise    = regexp.MustCompile(`(?i)^(windows|ms(-|)office|microsoft|compatible|[a-z]|x64|[a-z]{2}(-|_)[a-z]{2}|[a-z]{2})$|(rv:|outlook|ms(-|)office|microsoft|trident|\.net|msie|httrack|media center|infopath|aol|opera|iemobile|webbrowser).+`)
	windowsNT       = regexp.MustCompile(`\sNT (\d+\.\d+)`)
	windows64bitCPU = regexp.MustCompile(`(?i)w(ow|in)64`)

	crosDetect = regexp.MustCompile(`(?i)cros`)
	crosNoise  = regexp.MustCompile(`(?i)^([a-z]|x11|[a-z]{2}(-|_)[a-z]{2}|[a-z]{2})$|(rv:|trident).+`)
	crosBuild  = regexp.MustCompile(`\d+\.\d+\.\d+`)

	linuxDetect = regexp.MustCompile(`(?i)linux|x11|ubuntu|debian`)
	linuxNoise  = regexp.MustCompile(`(?i)^([a-z]|x11|unknown|compatible|[a-z]{2}(-|_)[a-z]{2}|[a-z]{2})$|(rv:|java|oracle|\+http|http|unknown|mozilla|konqueror|valve).+`)

	appleDetect    = regexp.MustCompile(`(?i)(cpu iphone|cpu os|iphone os|mac os|macos|intel os|ppc mac).+`)
	appleNoise     = regexp.MustCompile(`(?i)^([a-z]|macintosh|compatible|mimic|[a-z]{2}(-|_)[a-z]{2}|[a-z]{2}|rv|\d+\.\d+)$|(rv:|silk|valve).+`)
	appleRelease   = regexp.MustCompile(`(?i)(ppc |intel |)(mac|mac |)os (x |x|)\d+`)
	appleLikeMacOS = regexp.MustCompile(`(?i)\slike mac.+`)

	otherDetect = regexp.MustCompile(`(?i)((symbianos|nokia|blackberry|morphos|mac).+)|/linux|freebsd|symbos|series \d+|win\d+|unix|hp-ux|bsdi|bsd|x86_64`)
)

// rules is evaluated in order; the first family whose Detect matches any token wins.
// Order matters: "Linux; Android 9" must be Android, not Linux.
var rules = []Rule{
	{
		Family:  FamilyAndroid,
		Detect:  androidDetect,
		Noise:   androidNoise,
		Release: androidRelease,
		Build:   androidBuild,
	},
	{
		Family: FamilyWindows,
		Detect: windowsDetect,
		Noise:  windowsNoise,
		finish: func(s string) string {
			s = windowsNT.ReplaceAllStringFunc(s, func(match string) string {
				version := windowsNT.FindStringSubmatch(match)[1]
				return WindowsRelease(version, match)
			})
			return replaceFirst(windows64bitCPU, s, "(64-bit)")
		},
	},
	{
		Family: FamilyChromeOS,
		Detect: crosDetect,
		Noise:  crosNoise,
		Build:  crosBuild,
	},
	{
		Family: FamilyLinux,
		Detect: linuxDetect,
		Noise:  linuxNoise,
	},
	{
		Family:  FamilyApple,
		Detect:  appleDetect,
		Noise:   appleNoise,
		Release: appleRelease,
		finish: func(s string) string {
			return appleLikeMacOS.ReplaceAllString(s, "")
		},
	},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// RuleFor returns the rule for the given family.
// FamilyOther has no rule; it is the fallback when nothing else matches.
func RuleFor(family Family) (Rule, bool) {
	for _, r := range rules {
		if r.Family == family {
			return r, true
		}
	}
	return Rule{}, false
}

// Matches reports whether any token is detected by the rule.
func (r Rule) Matches(tokens []string) bool {
	for _, t := range tokens {
		if r.Detect.MatchString(t) {
			return true
		}
	}
	return false
}

// Describe normalizes the tokens into a single description.
func (r Rule) Describe(tokens []string, excludeBuild bool) string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if r.Release != nil {
			if m := r.Release.FindString(t); m != "" {
				t = replaceFirstLiteral(m, "-", " ")
			}
		}
		if r.Noise.MatchString(t) {
			continue
		}
		kept = append(kept, t)
	}

	s := joinTokens(kept)
	if excludeBuild && r.Build != nil {
		s = replaceFirst(r.Build, s, "")
	}
	if r.finish != nil {
		s = r.finish(s)
	}
	return collapse(s)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
