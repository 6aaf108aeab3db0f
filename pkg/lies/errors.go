package lies

import "errors"

var (
	ErrInvalidSnapshot = errors.New("lies: invalid snapshot")
	ErrNoClient        = errors.New("lies: no signal client")
)
