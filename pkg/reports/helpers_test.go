package reports_test

import (
	"time"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/signals"
)

func verdict(id, hash string, at time.Time) lies.Verdict {
	mem := 4.0
	return lies.Verdict{
		ID:     id,
		Hash:   hash,
		System: signals.SystemAndroid,
		Core:   signals.CoreLinux,
		Readings: []signals.Reading{
			signals.ReadDeviceMemory(&mem),
		},
		Disagreements: []lies.Disagreement{},
		Passed:        true,
		CreatedAt:     at.UTC(),
	}
}
