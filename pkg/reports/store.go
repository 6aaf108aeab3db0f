package reports

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

// Store persists verdicts.
type Store interface {
	// Save stores v. Saving the same id twice is a no-op.
	Save(ctx context.Context, v lies.Verdict) error
	// Get returns the verdict with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (lies.Verdict, error)
	// LatestByHash returns the newest verdict with the given hash or ErrNotFound.
	LatestByHash(ctx context.Context, hash string) (lies.Verdict, error)
}

// Healthcheck is the closure form used by readiness probes.
type Healthcheck func(context.Context) error

func validate(v lies.Verdict) error {
	if v.ID == "" || v.Hash == "" {
		return ErrInvalidReport
	}
	return nil
}

func encode(v lies.Verdict) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (lies.Verdict, error) {
	var v lies.Verdict
	if err := json.Unmarshal(data, &v); err != nil {
		return lies.Verdict{}, errors.Join(ErrDecode, err)
	}
	return v, nil
}

// IsNotFound reports whether err means the report does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
