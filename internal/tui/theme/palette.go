package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg      lipgloss.Color
	Fg      lipgloss.Color
	FgMuted lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color

	Today       lipgloss.Color
	TodayBg     lipgloss.Color
	TextOnToday lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	todayBg := blendColors(t.Today, t.Bg, todayTint(t))
	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Border:      lipgloss.Color(t.Border),
		Today:       lipgloss.Color(t.Today),
		TodayBg:     lipgloss.Color(todayBg),
		TextOnToday: lipgloss.Color(chooseTextColor(todayBg, t.Fg, t.Bg)),
	}
}

// todayTint is how far the today background is blended towards the
// theme background. Pale tints wash out on light backgrounds.
func todayTint(t *Theme) float64 {
	if t.IsLight() {
		return 0.55
	}
	return 0.70
}

// IsLight reports whether the theme background is light.
func (t *Theme) IsLight() bool {
	return relativeLuminance(t.Bg) > 0.55
}

// chooseTextColor picks whichever of a and b contrasts more with bg.
func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b; ratio 0 returns a, 1 returns b.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
