package lies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/errcapture"
)

func TestRun_RecoversPanic(t *testing.T) {
	t.Parallel()

	errs := errcapture.New(nil)
	boom := check{name: "voices", run: func(input) []Disagreement {
		var roster []string
		_ = roster[3]
		return nil
	}}

	out := run(boom, input{}, errs)
	assert.Nil(t, out)

	captured := errs.Errors()
	require.Len(t, captured, 1)
	assert.Equal(t, "Error", captured[0].TrustedName)
	assert.Contains(t, captured[0].TrustedMessage, "[voices check]")
}

func TestChecks_Order(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.name)
	}
	assert.Equal(t, []string{"platform", "touch", "deviceMemory", "hardwareConcurrency", "voices", "worker"}, names)
}
