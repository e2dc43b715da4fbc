package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/csheth/convoy/internal/api"
)

var fallback = []Metric{
	{Label: "Target private beta convoys per day", Value: "5+"},
	{Label: "Latency budget for live updates", Value: "< 1s"},
	{Label: "Elite tier conversion goal", Value: "3%"},
}

func counter(v float64) *api.Counter { return &api.Counter{Total: &v} }

func TestDeriveNewsletterOnly(t *testing.T) {
	got := Derive(&api.Stats{Newsletter: counter(1234)}, fallback)

	require.Len(t, got, 4)
	assert.Equal(t, Metric{Label: NewsletterLabel, Value: "1,234"}, got[0])
	assert.Equal(t, fallback, got[1:])
}

func TestDeriveOrdering(t *testing.T) {
	cases := []struct {
		name     string
		snapshot *api.Stats
		labels   []string
	}{
		{name: "no snapshot", snapshot: nil, labels: nil},
		{name: "empty snapshot", snapshot: &api.Stats{}, labels: nil},
		{name: "counter without total", snapshot: &api.Stats{Newsletter: &api.Counter{}}, labels: nil},
		{name: "applications only", snapshot: &api.Stats{Applications: counter(3)}, labels: []string{ApplicationsLabel}},
		{
			name:     "both",
			snapshot: &api.Stats{Applications: counter(3), Newsletter: counter(8)},
			labels:   []string{NewsletterLabel, ApplicationsLabel},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.snapshot, fallback)
			require.Len(t, got, len(tc.labels)+len(fallback))
			for i, label := range tc.labels {
				assert.Equal(t, label, got[i].Label)
			}
			assert.Equal(t, fallback, got[len(tc.labels):])
		})
	}
}

func TestDeriveDoesNotAliasFallback(t *testing.T) {
	base := make([]Metric, len(fallback), len(fallback)+4)
	copy(base, fallback)

	got := Derive(&api.Stats{Newsletter: counter(1)}, base)
	got[1].Value = "changed"

	assert.Equal(t, fallback, base)
}

func TestFormatCount(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		7:       "7",
		1234:    "1,234",
		1234567: "1,234,567",
		12.6:    "13",
		-4200:   "-4,200",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCount(in), "FormatCount(%v)", in)
	}
}

func TestFormatCountNeverPanics(t *testing.T) {
	for _, v := range []float64{math.MaxFloat64, 1e21, math.Inf(1), math.Inf(-1), math.NaN(), math.SmallestNonzeroFloat64} {
		assert.NotPanics(t, func() { _ = FormatCount(v) })
	}
}

func TestPresenterLocale(t *testing.T) {
	p := NewPresenter(language.German)
	assert.Equal(t, "1.234", p.FormatCount(1234))
}
