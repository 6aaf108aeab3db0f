package uaplatform

import "errors"

var (
	ErrEmptyUserAgent  = errors.New("empty user agent string")
	ErrNoPlatformBlock = errors.New("user agent has no parenthetical platform block")
)
