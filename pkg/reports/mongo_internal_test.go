package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/signals"
)

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	mem := 4.0
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := lies.Verdict{
		ID:       "a",
		Hash:     "h",
		System:   signals.SystemAndroid,
		Readings: []signals.Reading{signals.ReadDeviceMemory(&mem)},
		Disagreements: []lies.Disagreement{{
			SignalA: signals.SourceUserAgent,
			SignalB: signals.SourceVoices,
			Reason:  "Android speechSynthesis does not match Windows system",
			Kind:    lies.KindContradiction,
		}},
		Elapsed:   3 * time.Second,
		CreatedAt: at,
	}

	doc, err := toDocument(v)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(doc), 2)
	assert.Equal(t, "_id", doc[0].Key)
	assert.Equal(t, "a", doc[0].Value)
	assert.Equal(t, "created_at", doc[1].Key)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	got, err := fromDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, v.Hash, got.Hash)
	assert.Equal(t, v.Disagreements, got.Disagreements)
	assert.Equal(t, v.Elapsed, got.Elapsed)
	assert.True(t, at.Equal(got.CreatedAt))
	require.Len(t, got.Readings, 1)
	assert.Equal(t, 4.0, got.Readings[0].Raw)
}
