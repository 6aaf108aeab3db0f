package workerscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ct          workerscope.ContextType
		constructor string
		tampered    bool
	}{
		{workerscope.Service, "ServiceWorkerContainer", false},
		{workerscope.Shared, "SharedWorker", false},
		{workerscope.Dedicated, "Worker", false},
		{workerscope.Service, "Object", true},
		{workerscope.Shared, "", true},
		{workerscope.Dedicated, "SharedWorker", true},
	}

	for _, tc := range tests {
		t.Run(string(tc.ct)+"/"+tc.constructor, func(t *testing.T) {
			t.Parallel()
			err := workerscope.Validate(tc.ct, workerscope.Capability{Supported: true, Constructor: tc.constructor})
			if !tc.tampered {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, workerscope.IsTamperError(err))

			var te *workerscope.TamperError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tc.ct, te.Type)
			assert.Equal(t, tc.ct.Constructor(), te.Expected)
			assert.Equal(t, tc.constructor, te.Got)
		})
	}
}

func TestValidate_UnknownType(t *testing.T) {
	t.Parallel()

	err := workerscope.Validate(workerscope.ContextType("audio"), workerscope.Capability{Supported: true})
	assert.ErrorIs(t, err, workerscope.ErrUnknownType)
	assert.False(t, workerscope.IsTamperError(err))
}
