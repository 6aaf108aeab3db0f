package server

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a stable machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrRequestTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrBadGateway           = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
)

var (
	ErrNilResponse  = errors.New("handler returned nil response")
	ErrInvalidJSON  = errors.New("invalid JSON body")
	ErrInvalidPath  = errors.New("invalid path parameter")
	ErrInvalidURL   = errors.New("url must be absolute http or https")
	ErrNilComponent = errors.New("nil component")
)

// ValidationError lists why a request body was rejected, keyed by field.
type ValidationError map[string][]string

func (e ValidationError) Error() string { return "validation failed" }

// invalid turns a (possibly joined) validation failure into a ValidationError
// under field. The sentinel marker is skipped.
func invalid(field string, err error, marker error) ValidationError {
	var reasons []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if e != marker {
				reasons = append(reasons, e.Error())
			}
		}
	} else {
		reasons = append(reasons, err.Error())
	}
	return ValidationError{field: reasons}
}
