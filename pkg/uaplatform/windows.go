package uaplatform

// ntReleases maps internal Windows NT versions to marketing names.
var ntReleases = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP Pro",
	"5.1":  "XP",
	"5.0":  "2000",
}

// WindowsRelease returns the replacement for an " NT x.y" match.
// Known versions become " <marketing name>", 4.0 keeps the original match,
// and anything else becomes " <version>".
func WindowsRelease(version, match string) string {
	if name, ok := ntReleases[version]; ok {
		return " " + name
	}
	if version == "4.0" {
		return match
	}
	return " " + version
}
