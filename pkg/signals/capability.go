package signals

// DefaultMobileLimit is the largest device memory (GB) or logical core count
// considered plausible for a mobile system.
const DefaultMobileLimit = 8

// TooHighForMobile reports a desktop-class resource count on a mobile system.
// A nil value means the signal is unavailable and never fires.
func TooHighForMobile(value *float64, system string, limit float64) bool {
	if value == nil {
		return false
	}
	return *value > limit && IsMobile(system)
}
