package hashify

import "errors"

var ErrEncode = errors.New("hashify: failed to encode value")
