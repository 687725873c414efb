// Package badge renders the security-score SVG badge with dynamic font
// measurement.
package badge

import "fmt"

// Engine generates SVG badges using a specific font.
type Engine struct {
	metrics *FontMetrics
}

// New creates a badge engine with the given font metrics.
func New(metrics *FontMetrics) *Engine {
	return &Engine{metrics: metrics}
}

// Badge defines the content and appearance of a single badge.
type Badge struct {
	Label string // left side text
	Value string // right side text
	Color string // hex color for right side (e.g. "#4c1")
}

// Generate produces a shields.io-compatible SVG badge string.
func (e *Engine) Generate(b Badge) string {
	return e.renderSVG(b)
}

// ScoreBadge builds the badge content for a 0-100 security score.
func ScoreBadge(label string, score int) Badge {
	return Badge{
		Label: label,
		Value: fmt.Sprintf("%d/100", score),
		Color: ScoreColor(score),
	}
}

// ScoreColor maps a 0-100 score to a badge hex color.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return "#4c1"
	case score >= 60:
		return "#97ca00"
	case score >= 40:
		return "#dfb317"
	case score >= 20:
		return "#fe7d37"
	default:
		return "#e05d44"
	}
}
