package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/liekit/pkg/signals"
)

const (
	uaWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	uaPhone   = "Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1; Microsoft; Lumia 950) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/52.0.2743.116 Mobile Safari/537.36 Edge/15.15063"
	uaAndroid = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	uaCrOS    = "Mozilla/5.0 (X11; CrOS x86_64 13904.97.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.167 Safari/537.36"
	uaUbuntu  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	uaIPad    = "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	uaMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15"
)

func TestSystem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"windows", uaWindows, signals.SystemWindows},
		{"windows phone before windows", uaPhone, signals.SystemWindowsPhone},
		{"android before linux", uaAndroid, signals.SystemAndroid},
		{"chrome os", uaCrOS, signals.SystemChromeOS},
		{"linux", uaUbuntu, signals.SystemLinux},
		{"ipad", uaIPad, signals.SystemIPad},
		{"iphone before mac", uaIPhone, signals.SystemIPhone},
		{"mac", uaMac, signals.SystemMac},
		{"other", "curl/7.64.1", signals.SystemOther},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, signals.System(tc.ua))
		})
	}
}

func TestCoreAndPlatformSystem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, signals.CoreWindows, signals.Core(uaWindows))
	assert.Equal(t, signals.CoreLinux, signals.Core(uaAndroid))
	assert.Equal(t, signals.CoreLinux, signals.Core(uaCrOS))
	assert.Equal(t, signals.CoreIOS, signals.Core(uaIPhone))
	assert.Equal(t, signals.CoreMac, signals.Core(uaMac))
	assert.Equal(t, signals.CoreOther, signals.Core("curl/7.64.1"))

	assert.Equal(t, signals.CoreWindows, signals.PlatformSystem("Win32"))
	assert.Equal(t, signals.CoreLinux, signals.PlatformSystem("Linux armv8l"))
	assert.Equal(t, signals.CoreIOS, signals.PlatformSystem("iPhone"))
	assert.Equal(t, signals.CoreMac, signals.PlatformSystem("MacIntel"))
	assert.Equal(t, signals.CoreOther, signals.PlatformSystem(""))
}

func TestPlatformLie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		platform string
		want     bool
	}{
		{"windows on win32", uaWindows, "Win32", false},
		{"android on arm", uaAndroid, "Linux armv8l", false},
		{"mac on macintel", uaMac, "MacIntel", false},
		{"iphone on iphone", uaIPhone, "iPhone", false},
		{"windows on linux", uaWindows, "Linux x86_64", true},
		{"mac on win32", uaMac, "Win32", true},
		{"win64 on win16", uaWindows, "Win16", true},
		{"win32 ua not corroborated", "Mozilla/4.0 (compatible; MSIE 6.0; Win32)", "Windows", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, signals.PlatformLie(tc.ua, tc.platform))
		})
	}
}

func TestInvalid64BitCPU(t *testing.T) {
	t.Parallel()

	assert.True(t, signals.Invalid64BitCPU("Windows NT 10.0; WOW64", "Win16"))
	assert.True(t, signals.Invalid64BitCPU("Windows 98; Win32", "Linux"))
	assert.False(t, signals.Invalid64BitCPU("Windows 98; Win32", "Win32"))
	assert.False(t, signals.Invalid64BitCPU(uaWindows, "Win32"))
	assert.False(t, signals.Invalid64BitCPU(uaMac, "MacIntel"))
}

func TestMacTouchLie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		platform string
		touch    int
		want     bool
	}{
		{"mac platform with touch", uaMac, "MacIntel", 5, true},
		{"mac platform with windows ua", uaWindows, "MacIntel", 5, true},
		{"mac ua with touch", uaMac, "Win32", 1, true},
		{"iphone like mac is excused", uaIPhone, "iPhone", 5, false},
		{"mac without touch", uaMac, "MacIntel", 0, false},
		{"windows touch laptop", uaWindows, "Win32", 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, signals.MacTouchLie(tc.ua, tc.platform, tc.touch))
		})
	}
}

func TestVoiceSystem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, signals.SystemWindows, signals.VoiceSystem([]signals.Voice{
		{Name: "Google US English", Lang: "en-US"},
		{Name: "Microsoft David - English (United States)", Lang: "en-US"},
	}))
	assert.Equal(t, signals.SystemChromeOS, signals.VoiceSystem([]signals.Voice{
		{Name: "Chrome OS US English 1", Lang: "en-US"},
	}))
	assert.Equal(t, signals.SystemAndroid, signals.VoiceSystem([]signals.Voice{
		{Name: "Android Speech Recognition and Synthesis from Google en-us-x-sfg-local", Lang: "en-US"},
	}))
	assert.Empty(t, signals.VoiceSystem([]signals.Voice{{Name: "Samantha", Lang: "en-US"}}))
	assert.Empty(t, signals.VoiceSystem(nil))
}

func TestTooHighForMobile(t *testing.T) {
	t.Parallel()

	v := func(f float64) *float64 { return &f }

	assert.True(t, signals.TooHighForMobile(v(16), signals.SystemAndroid, signals.DefaultMobileLimit))
	assert.True(t, signals.TooHighForMobile(v(12), signals.SystemIPhone, signals.DefaultMobileLimit))
	assert.False(t, signals.TooHighForMobile(v(16), signals.SystemLinux, signals.DefaultMobileLimit))
	assert.False(t, signals.TooHighForMobile(v(8), signals.SystemAndroid, signals.DefaultMobileLimit))
	assert.False(t, signals.TooHighForMobile(nil, signals.SystemAndroid, signals.DefaultMobileLimit))
	assert.False(t, signals.TooHighForMobile(v(16), "", signals.DefaultMobileLimit))
}

func TestReadings(t *testing.T) {
	t.Parallel()

	r := signals.ReadUserAgent(uaAndroid)
	assert.Equal(t, signals.SourceUserAgent, r.Source)
	assert.Equal(t, signals.SystemAndroid, r.Family)

	r = signals.ReadPlatform("")
	assert.Empty(t, r.Family)

	r = signals.ReadVoices(nil)
	assert.Equal(t, signals.SourceVoices, r.Source)
	assert.Empty(t, r.Family)

	mem := 4.0
	r = signals.ReadDeviceMemory(&mem)
	assert.Equal(t, 4.0, r.Raw)
	assert.Nil(t, signals.ReadHardwareConcurrency(nil).Raw)
}
