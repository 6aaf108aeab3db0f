package browserprobe

import "errors"

var (
	ErrLaunch       = errors.New("failed to launch browser")
	ErrConnect      = errors.New("failed to connect to browser")
	ErrClosed       = errors.New("browser is closed")
	ErrNavigate     = errors.New("failed to open probe page")
	ErrEval         = errors.New("script evaluation failed")
	ErrDecode       = errors.New("failed to decode script result")
	ErrAssetsServer = errors.New("failed to serve probe assets")
)
