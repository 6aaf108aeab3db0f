package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
)

// BindJSON decodes a strict JSON body of at most maxBytes.
func BindJSON(maxBytes int64) Bind {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				return errors.Join(ErrRequestTooLarge, err)
			case errors.Is(err, io.EOF):
				return errors.Join(ErrBadRequest, fmt.Errorf("%w: empty body", ErrInvalidJSON))
			default:
				return errors.Join(ErrBadRequest, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			}
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errors.Join(ErrBadRequest, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON))
		}
		return nil
	}
}

// BindPath fills string fields tagged `path:"name"` from the router's URL
// parameters.
func BindPath(param func(r *http.Request, name string) string) Bind {
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}
		rv = rv.Elem()
		rt := rv.Type()
		for i := range rt.NumField() {
			name := rt.Field(i).Tag.Get("path")
			if name == "" || name == "-" {
				continue
			}
			field := rv.Field(i)
			if field.Kind() != reflect.String || !field.CanSet() {
				return fmt.Errorf("%w: field %s must be an exported string", ErrInvalidPath, rt.Field(i).Name)
			}
			field.SetString(param(r, name))
		}
		return nil
	}
}
