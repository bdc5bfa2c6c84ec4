package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed templates/badge.svg
var badgeTemplateText string

var badgeTemplate = template.Must(template.New("badge").Parse(badgeTemplateText))

// Badge colors, shields.io palette.
const (
	ColorBrightGreen = "#4c1"
	ColorGreen       = "#97CA00"
	ColorYellowGreen = "#a4a61d"
	ColorYellow      = "#dfb317"
	ColorOrange      = "#fe7d37"
	ColorRed         = "#e05d44"
	ColorLightGrey   = "#9f9f9f"
)

var badgeColorRanges = []struct {
	minimum float64
	color   string
}{
	{95, ColorBrightGreen},
	{90, ColorGreen},
	{75, ColorYellowGreen},
	{60, ColorYellow},
	{40, ColorOrange},
	{0, ColorRed},
}

// BadgeColor returns the badge color for a coverage percentage.
func BadgeColor(percent float64) string {
	for _, r := range badgeColorRanges {
		if percent >= r.minimum {
			return r.color
		}
	}

	return ColorLightGrey
}

// RenderBadge renders the SVG status badge for a coverage percentage.
func RenderBadge(percent float64) ([]byte, error) {
	var buf bytes.Buffer

	err := badgeTemplate.Execute(&buf, struct {
		Result string
		Color  string
	}{
		Result: fmt.Sprintf("%.1f", percent),
		Color:  BadgeColor(percent),
	})
	if err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}

	return buf.Bytes(), nil
}
