package signals

import "regexp"

// Voice is one installed speech-synthesis voice.
type Voice struct {
	Name string `json:"name" yaml:"name"`
	Lang string `json:"lang" yaml:"lang"`
}

var voiceCascade = []matcher{
	{regexp.MustCompile(`(?i)microsoft`), SystemWindows},
	{regexp.MustCompile(`(?i)chrome os`), SystemChromeOS},
	{regexp.MustCompile(`(?i)android`), SystemAndroid},
}

// VoiceSystem infers the system from the voice roster.
// The cascade is checked against the whole roster per pattern, so a single
// Microsoft voice decides Windows even when Android voices are also present.
// It returns "" when no voice is telling: absence is not evidence.
func VoiceSystem(voices []Voice) string {
	for _, m := range voiceCascade {
		for _, v := range voices {
			if m.re.MatchString(v.Name) {
				return m.label
			}
		}
	}
	return ""
}
