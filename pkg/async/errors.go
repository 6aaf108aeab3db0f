package async

import "errors"

var (
	ErrTimeout = errors.New("async: timed out waiting for result")
	ErrPanic   = errors.New("async: panic in asynchronous call")
)
