package lies_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

const snapshotJSON = `{
	"userAgent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"platform": "Win32",
	"maxTouchPoints": 0,
	"hardwareConcurrency": 8,
	"voices": [{"name": "Microsoft David", "lang": "en-US"}],
	"workers": {
		"dedicated": {"constructor": "Worker", "reply": {"userAgent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"}}
	}
}`

const snapshotYAML = `
userAgent: Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36
platform: Win32
hardwareConcurrency: 8
voices:
  - name: Microsoft David
    lang: en-US
workers:
  dedicated:
    constructor: Worker
    latency: 5ms
    reply:
      userAgent: Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36
`

func TestSnapshot_Decode(t *testing.T) {
	t.Parallel()

	var fromJSON, fromYAML lies.Snapshot
	require.NoError(t, json.Unmarshal([]byte(snapshotJSON), &fromJSON))
	require.NoError(t, yaml.Unmarshal([]byte(snapshotYAML), &fromYAML))

	for _, s := range []lies.Snapshot{fromJSON, fromYAML} {
		assert.Equal(t, "Win32", s.Platform)
		require.NotNil(t, s.HardwareConcurrency)
		assert.Equal(t, 8.0, *s.HardwareConcurrency)
		assert.Nil(t, s.DeviceMemory)
		require.Len(t, s.Signals.Voices, 1)
		require.Contains(t, s.Contexts, workerscope.Dedicated)
		assert.NoError(t, s.Validate())
	}
	assert.Equal(t, 5*time.Millisecond, fromYAML.Contexts[workerscope.Dedicated].Latency)
}

func TestSnapshot_Client(t *testing.T) {
	t.Parallel()

	var s lies.Snapshot
	require.NoError(t, json.Unmarshal([]byte(snapshotJSON), &s))

	read, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, read.Voices)
	assert.Equal(t, s.UserAgent, read.UserAgent)

	voices, err := s.Voices(context.Background())
	require.NoError(t, err)
	assert.Len(t, voices, 1)

	assert.NotNil(t, s.Workers())
	assert.Nil(t, (&lies.Snapshot{}).Workers())

	v := newRunner().Run(context.Background(), &s)
	require.NotNil(t, v.Worker)
	assert.Equal(t, []string{
		"Linux worker does not match Windows system",
		"dedicated worker userAgent does not match",
	}, reasons(v))
	assert.False(t, v.Passed)
}

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    lies.Snapshot
	}{
		{"negative touch", lies.Snapshot{Signals: lies.Signals{MaxTouchPoints: -1}}},
		{"negative memory", lies.Snapshot{Signals: lies.Signals{DeviceMemory: num(-2)}}},
		{"negative cores", lies.Snapshot{Signals: lies.Signals{HardwareConcurrency: num(-4)}}},
		{"unknown worker", lies.Snapshot{Contexts: workerscope.Reported{"audio": {}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.s.Validate(), lies.ErrInvalidSnapshot)
		})
	}

	empty := lies.Snapshot{}
	assert.NoError(t, empty.Validate())
}
