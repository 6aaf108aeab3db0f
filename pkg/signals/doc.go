// Package signals derives a coarse operating system family from individual
// browser signals so they can be checked against each other.
//
// Each deriver is a pure function over one signal:
//
//   - System – user agent → Windows Phone, Windows, Android, Chrome OS, Linux,
//     iPad, iPhone, iPod, iOS, Mac or Other.
//   - Core / PlatformSystem – user agent or navigator.platform → Windows,
//     Linux, iOS, Mac or Other.
//   - VoiceSystem – speech-synthesis voice names → Windows, Chrome OS, Android
//     or no opinion.
//
// A few derivers answer a yes/no question instead of naming a family:
// MacTouchLie, Invalid64BitCPU, PlatformLie and TooHighForMobile.
//
// The cascades are ordered and first match wins. An empty result always means
// "no opinion"; callers must never treat it as a contradiction.
package signals
