package browserprobe_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/browserprobe"
	"github.com/dmitrymomot/liekit/pkg/lies"
)

// Needs a local Chrome; set LIEKIT_BROWSER_TEST=1 to run.
func TestBrowser_InspectProbePage(t *testing.T) {
	if os.Getenv("LIEKIT_BROWSER_TEST") == "" {
		t.Skip("LIEKIT_BROWSER_TEST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	b, err := browserprobe.Launch(ctx, browserprobe.DefaultConfig())
	require.NoError(t, err)
	defer b.Close()

	runner := lies.NewRunner(lies.NewEngine(lies.DefaultConfig()), nil)
	v, err := b.Inspect(ctx, runner, "")
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.NotEmpty(t, v.Hash)
	assert.NotEmpty(t, v.System)
	if assert.NotNil(t, v.Worker) {
		assert.NotEmpty(t, v.Worker.UserAgent)
	}
}

func TestBrowser_OpenAfterClose(t *testing.T) {
	if os.Getenv("LIEKIT_BROWSER_TEST") == "" {
		t.Skip("LIEKIT_BROWSER_TEST not set")
	}

	ctx := context.Background()
	b, err := browserprobe.Launch(ctx, browserprobe.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, err = b.Open(ctx, "")
	assert.ErrorIs(t, err, browserprobe.ErrClosed)
}
