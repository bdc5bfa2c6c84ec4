package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
)

func TestBadgeColor(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
	}{
		{100, domain.ColorBrightGreen},
		{95, domain.ColorBrightGreen},
		{94.9, domain.ColorGreen},
		{90, domain.ColorGreen},
		{80, domain.ColorYellowGreen},
		{60, domain.ColorYellow},
		{45, domain.ColorOrange},
		{39.9, domain.ColorRed},
		{0, domain.ColorRed},
		{-1, domain.ColorLightGrey},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.BadgeColor(tt.percent), "percent %v", tt.percent)
	}
}

func TestRenderBadge(t *testing.T) {
	svg, err := domain.RenderBadge(47.2727)
	require.NoError(t, err)

	text := string(svg)
	assert.Contains(t, text, "<svg")
	assert.Contains(t, text, "docstring coverage: 47.3%")
	assert.Contains(t, text, `fill="`+domain.ColorOrange+`"`)
	assert.NotContains(t, text, "{{")
}
