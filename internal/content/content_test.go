package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSectionsHaveUniqueAnchors(t *testing.T) {
	seen := map[string]bool{}
	for _, section := range Page() {
		require.NotEmpty(t, section.Anchor)
		require.NotEmpty(t, section.Title)
		assert.False(t, seen[section.Anchor], "duplicate anchor %q", section.Anchor)
		seen[section.Anchor] = true
	}
	assert.Len(t, seen, 7)
}

func TestFallbackMetricsOrder(t *testing.T) {
	got := FallbackMetrics()
	require.Len(t, got, 3)
	assert.Equal(t, "5+", got[0].Value)
	assert.Equal(t, "< 1s", got[1].Value)
	assert.Equal(t, "3%", got[2].Value)
}

func TestPaletteSectionIncludesGradientsAndTips(t *testing.T) {
	section := paletteSection()
	require.Len(t, section.Blocks, len(Palette())+2)
	assert.Equal(t, "Gradients", section.Blocks[len(Palette())].Heading)
	assert.Len(t, section.Blocks[len(Palette())].Items, len(Gradients()))
	assert.Equal(t, UsageTips(), section.Blocks[len(section.Blocks)-1].Items)
}
