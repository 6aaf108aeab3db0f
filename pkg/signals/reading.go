package signals

// Source identifies the signal a Reading came from.
type Source string

const (
	SourceUserAgent           Source = "userAgent"
	SourcePlatform            Source = "platform"
	SourceTouchPoints         Source = "maxTouchPoints"
	SourceVoices              Source = "speechSynthesis"
	SourceWorkerUserAgent     Source = "workerUserAgent"
	SourceDeviceMemory        Source = "deviceMemory"
	SourceHardwareConcurrency Source = "hardwareConcurrency"
)

// Reading is one signal observed during a pass and the family it points to.
// Family is empty when the signal has no opinion.
type Reading struct {
	Source Source `json:"source"`
	Family string `json:"family,omitempty"`
	Raw    any    `json:"raw,omitempty"`
}

// ReadUserAgent derives the system from the primary user agent.
func ReadUserAgent(userAgent string) Reading {
	return Reading{Source: SourceUserAgent, Family: System(userAgent), Raw: userAgent}
}

// ReadPlatform derives the coarse system from navigator.platform.
func ReadPlatform(platform string) Reading {
	r := Reading{Source: SourcePlatform, Raw: platform}
	if platform != "" {
		r.Family = PlatformSystem(platform)
	}
	return r
}

// ReadTouchPoints records the touch point count. Touch has no family of its own.
func ReadTouchPoints(maxTouchPoints int) Reading {
	return Reading{Source: SourceTouchPoints, Raw: maxTouchPoints}
}

// ReadVoices derives the system from the voice roster.
func ReadVoices(voices []Voice) Reading {
	names := make([]string, 0, len(voices))
	for _, v := range voices {
		names = append(names, v.Name)
	}
	return Reading{Source: SourceVoices, Family: VoiceSystem(voices), Raw: names}
}

// ReadWorkerUserAgent derives the system from a worker-reported user agent.
func ReadWorkerUserAgent(userAgent string) Reading {
	return Reading{Source: SourceWorkerUserAgent, Family: System(userAgent), Raw: userAgent}
}

// ReadDeviceMemory records navigator.deviceMemory.
func ReadDeviceMemory(v *float64) Reading {
	return Reading{Source: SourceDeviceMemory, Raw: deref(v)}
}

// ReadHardwareConcurrency records navigator.hardwareConcurrency.
func ReadHardwareConcurrency(v *float64) Reading {
	return Reading{Source: SourceHardwareConcurrency, Raw: deref(v)}
}

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
